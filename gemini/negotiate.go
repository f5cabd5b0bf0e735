package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
)

// GenerateNegotiationPhrases returns five haggling phrases for the given
// product and price gap, in the requested language. The bool reports whether
// they came from the model or the canned tables.
func GenerateNegotiationPhrases(ctx context.Context, product string, currentPrice, targetPrice float64, language string) ([]string, bool) {
	langName := LanguageName(language)

	prompt := fmt.Sprintf(`Generate 5 culturally appropriate and effective negotiation phrases for an Indian mandi vendor.

Context:
- Product: %s
- Current asking price: ₹%.0f per kg
- Target price: ₹%.0f per kg
- Language: %s
- Setting: Indian agricultural market (mandi)

Requirements:
1. Phrases should be respectful and culturally appropriate for Indian markets
2. Use polite but firm negotiation language
3. Consider the vendor-buyer relationship dynamics
4. Include references to quality, market rates, or bulk purchases where appropriate
5. Make phrases sound natural in %s

Provide exactly 5 phrases in this JSON format:
["phrase 1", "phrase 2", "phrase 3", "phrase 4", "phrase 5"]

Each phrase should be practical and usable in real market negotiations.`,
		product, currentPrice, targetPrice, langName, langName)

	text, err := Generate(ctx, prompt)
	if err != nil {
		log.Printf("Negotiation phrases error: %v", err)
		return fallbackPhrases(language, targetPrice), false
	}

	raw, err := ExtractJSONArray(text)
	if err != nil {
		log.Printf("Negotiation phrases parse error: %v", err)
		return fallbackPhrases(language, targetPrice), false
	}

	var phrases []string
	if err := json.Unmarshal([]byte(raw), &phrases); err != nil || len(phrases) == 0 {
		return fallbackPhrases(language, targetPrice), false
	}

	return phrases, true
}

func fallbackPhrases(language string, targetPrice float64) []string {
	target := fmt.Sprintf("₹%.0f", targetPrice)

	tables := map[string][]string{
		"en": {
			"The quality is excellent, but can we discuss a better rate for regular business?",
			"I've seen similar quality at " + target + " in nearby mandis. Can you match that?",
			"For bulk purchases like this, what's your best price?",
			"This looks fresh and good quality. What's your final rate for cash payment?",
			"I'm a regular customer here. Can we work out a fair price that benefits both of us?",
		},
		"hi": {
			"गुणवत्ता बहुत अच्छी है, लेकिन नियमित व्यापार के लिए बेहतर दर पर बात कर सकते हैं?",
			"पास की मंडी में इसी गुणवत्ता का " + target + " में मिल रहा है। क्या आप वही दर दे सकते हैं?",
			"इतनी मात्रा के लिए आपका अंतिम भाव क्या है?",
			"माल ताज़ा और अच्छा लग रहा है। नकद पेमेंट के लिए फाइनल रेट क्या है?",
			"मैं यहाँ का पुराना ग्राहक हूँ। क्या हम दोनों के फायदे की कोई दर तय कर सकते हैं?",
		},
		"ta": {
			"தரம் மிகவும் நல்லது, ஆனால் வழக்கமான வியாபாரத்திற்கு சிறந்த விலையில் பேசலாமா?",
			"அருகிலுள்ள மண்டியில் இதே தரத்தில் " + target + " கிடைக்கிறது. அதே விலை கொடுக்க முடியுமா?",
			"இவ்வளவு அளவுக்கு உங்கள் இறுதி விலை என்ன?",
			"பொருள் புதியதாகவும் நல்ல தரமாகவும் இருக்கிறது. பணம் கொடுத்தால் இறுதி விலை என்ன?",
			"நான் இங்கே வழக்கமான வாடிக்கையாளர். நம் இருவருக்கும் நன்மையான விலை நிர்ணயிக்கலாமா?",
		},
		"te": {
			"నాణ్యత చాలా బాగుంది, కానీ రెగ్యులర్ బిజినెస్ కోసం మంచి రేటు మాట్లాడవచ్చా?",
			"దగ్గరి మండీలో ఇదే నాణ్యతలో " + target + " కి దొరుకుతోంది. అదే రేటు ఇవ్వగలరా?",
			"ఇంత పరిమాణానికి మీ ఫైనల్ రేటు ఎంత?",
			"సామాన్ తాజాగా మరియు మంచి నాణ్యతతో ఉంది. క్యాష్ పేమెంట్ కి ఫైనల్ రేటు ఎంత?",
			"నేను ఇక్కడ రెగ్యులర్ కస్టమర్ ని. మా ఇద్దరికీ మేలు చేసే రేటు ఫిక్స్ చేయవచ్చా?",
		},
		"kn": {
			"ಗುಣಮಟ್ಟ ತುಂಬಾ ಚೆನ್ನಾಗಿದೆ, ಆದರೆ ನಿಯಮಿತ ವ್ಯಾಪಾರಕ್ಕಾಗಿ ಉತ್ತಮ ದರದಲ್ಲಿ ಮಾತನಾಡಬಹುದೇ?",
			"ಹತ್ತಿರದ ಮಂಡಿಯಲ್ಲಿ ಇದೇ ಗುಣಮಟ್ಟದಲ್ಲಿ " + target + " ಗೆ ಸಿಗುತ್ತಿದೆ. ಅದೇ ದರ ಕೊಡಬಹುದೇ?",
			"ಇಷ್ಟು ಪ್ರಮಾಣಕ್ಕೆ ನಿಮ್ಮ ಅಂತಿಮ ದರ ಎಷ್ಟು?",
			"ಸಾಮಾನು ತಾಜಾ ಮತ್ತು ಉತ್ತಮ ಗುಣಮಟ್ಟದಲ್ಲಿದೆ. ನಗದು ಪಾವತಿಗೆ ಅಂತಿಮ ದರ ಎಷ್ಟು?",
			"ನಾನು ಇಲ್ಲಿ ನಿಯಮಿತ ಗ್ರಾಹಕ. ನಮ್ಮಿಬ್ಬರಿಗೂ ಲಾಭದಾಯಕ ದರ ನಿಗದಿಪಡಿಸಬಹುದೇ?",
		},
		"mr": {
			"गुणवत्ता खूप चांगली आहे, पण नियमित व्यापारासाठी चांगल्या दराने बोलू शकतो का?",
			"जवळच्या मंडीत याच गुणवत्तेत " + target + " ला मिळतंय. तोच दर देऊ शकाल का?",
			"एवढ्या प्रमाणासाठी तुमचा अंतिम भाव काय आहे?",
			"माल ताजा आणि चांगल्या गुणवत्तेचा दिसतोय. रोख पेमेंटसाठी फायनल रेट काय आहे?",
			"मी इथला जुना ग्राहक आहे. आपल्या दोघांच्या फायद्याचा दर ठरवू शकतो का?",
		},
	}

	if phrases, ok := tables[language]; ok {
		return phrases
	}
	return tables["en"]
}
