package db

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used across the API.
const (
	UsersCollection     = "users"
	InventoryCollection = "inventory"
	ListingsCollection  = "buyer_seller_listings"
)

var (
	mu        sync.Mutex
	client    *mongo.Client
	clientErr error
)

// Client returns the process-wide Mongo client, connecting on first use.
// The driver maintains its own connection pool, so every handler shares
// this single client.
func Client() (*mongo.Client, error) {
	mu.Lock()
	defer mu.Unlock()

	if client != nil || clientErr != nil {
		return client, clientErr
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		clientErr = fmt.Errorf("MONGODB_URI is not set")
		return nil, clientErr
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, clientErr = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	return client, clientErr
}

// Database returns the application database (MONGODB_DB, default "vanijya_ai").
func Database() (*mongo.Database, error) {
	c, err := Client()
	if err != nil {
		return nil, err
	}
	name := os.Getenv("MONGODB_DB")
	if name == "" {
		name = "vanijya_ai"
	}
	return c.Database(name), nil
}

// Collection is the accessor handlers use for all persisted state.
func Collection(name string) (*mongo.Collection, error) {
	d, err := Database()
	if err != nil {
		return nil, err
	}
	return d.Collection(name), nil
}

// SetClient swaps in an externally constructed client. Handler tests point
// the package at a mock deployment with it; nil restores lazy connection.
func SetClient(c *mongo.Client) {
	mu.Lock()
	defer mu.Unlock()
	client = c
	clientErr = nil
}

// Ping verifies the connection is alive. Used by the health endpoint.
func Ping(ctx context.Context) error {
	c, err := Client()
	if err != nil {
		return err
	}
	return c.Ping(ctx, readpref.Primary())
}

// Disconnect tears down the shared client and resets the lazy-init state so
// tests can isolate themselves from each other.
func Disconnect(ctx context.Context) error {
	mu.Lock()
	defer mu.Unlock()

	if client == nil {
		clientErr = nil
		return nil
	}
	err := client.Disconnect(ctx)
	client = nil
	clientErr = nil
	return err
}
