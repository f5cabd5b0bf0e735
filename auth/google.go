package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"google.golang.org/api/option"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Naren1520/Vanijya-Ai/db"
	"github.com/Naren1520/Vanijya-Ai/models"
)

var (
	firebaseApp  *firebase.App
	firebaseAuth *fbauth.Client
	projectID    string
)

func init() {
	// Load .env locally
	_ = godotenv.Load()

	ctx := context.Background()

	// Read the whole JSON blob out of the ENV
	credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	if credsJSON == "" {
		log.Println("⚠️ FIREBASE_CREDENTIALS_JSON not set; Google sign-in disabled")
		return
	}

	projectID = os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		log.Fatal("❌ FIREBASE_PROJECT_ID must be set")
	}

	// INITIALIZE FIREBASE with the JSON directly (no file!)
	opt := option.WithCredentialsJSON([]byte(credsJSON))
	config := &firebase.Config{ProjectID: projectID}

	var err error
	firebaseApp, err = firebase.NewApp(ctx, config, opt)
	if err != nil {
		log.Fatalf("❌ Error initializing Firebase app: %v", err)
	}

	firebaseAuth, err = firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("❌ Error getting Firebase Auth client: %v", err)
	}
}

// ---------------------------------------------
// GOOGLE USER LOGIN
// ---------------------------------------------
func GoogleLoginHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDToken string `json:"idToken"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDToken == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if firebaseAuth == nil {
		http.Error(w, "Google sign-in is not configured", http.StatusInternalServerError)
		return
	}

	ctx := r.Context()

	// Verify the Google ID token AND check for revocation
	token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, req.IDToken)
	if err != nil {
		http.Error(w, "Invalid Google ID token", http.StatusUnauthorized)
		return
	}

	if token.Audience != projectID {
		http.Error(w, "Invalid token audience", http.StatusUnauthorized)
		return
	}

	// Extract user info
	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)
	picture, _ := token.Claims["picture"].(string)
	googleUserID := token.UID

	if email == "" {
		http.Error(w, "Token is missing an email claim", http.StatusUnauthorized)
		return
	}

	users, err := db.Collection(db.UsersCollection)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	// ---------------------------------------------
	// 1️⃣ Fetch or Create user
	// ---------------------------------------------
	var user models.UserProfile
	err = users.FindOne(ctx, bson.M{"email": email}).Decode(&user)

	if err == mongo.ErrNoDocuments {
		// First sign-in → create a minimal record; phone/address arrive
		// later through the profile completion form.
		now := time.Now().UTC()
		user = models.UserProfile{
			ID:        uuid.NewString(),
			Email:     email,
			Name:      name,
			GoogleID:  googleUserID,
			Avatar:    picture,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if _, err := users.InsertOne(ctx, user); err != nil {
			http.Error(w, "Failed to create user", http.StatusInternalServerError)
			return
		}

	} else if err == nil {
		// Returning user → refresh name/avatar from Google
		update := bson.M{"$set": bson.M{
			"name":      name,
			"avatar":    picture,
			"googleId":  googleUserID,
			"updatedAt": time.Now().UTC(),
		}}
		if _, err := users.UpdateOne(ctx, bson.M{"email": email}, update); err == nil {
			user.Name = name
			user.Avatar = picture
			user.GoogleID = googleUserID
		}
	} else {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	// ---------------------------------------------
	// 2️⃣ Create auth response
	// ---------------------------------------------
	resp := map[string]interface{}{
		"message":         "Login successful",
		"user":            user,
		"profileComplete": user.ProfileComplete(),
		"token":           issueJWT(email, user.ID, name, picture),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// issueJWT generates a JWT token for a user
func issueJWT(email, userID, name, picture string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"name":    name,
		"picture": picture,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		// In production, you may want to handle this differently
		return ""
	}

	return signedToken
}
