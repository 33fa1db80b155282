package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"

	"go-reviewbird/classifier"
	"go-reviewbird/cronjobs"
	"go-reviewbird/db"
	"go-reviewbird/nlp"
	"go-reviewbird/reviews"
	"go-reviewbird/routes"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Review store + initial load
	store := reviews.NewStore()
	if source := os.Getenv("REVIEWS_TSV_URL"); source != "" {
		count, err := store.Load(context.Background(), source)
		if err != nil {
			log.Printf("Initial review load failed: %v", err)
		} else {
			log.Printf("Loaded %d reviews from %s", count, source)
		}
	} else {
		log.Println("REVIEWS_TSV_URL not set, starting with an empty collection")
	}

	// Classifier, CLASSIFIER_URL overrides the default hosted model
	clf := classifier.New(os.Getenv("CLASSIFIER_URL"))
	if os.Getenv("HF_API_TOKEN") != "" {
		log.Println("HF_API_TOKEN loaded")
	}

	// Init firestore
	firestoreClient, err := db.InitFirestore()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer db.CloseFirestore() // Firestore client is closed on exit

	// Cloud Natural Language client for the compare endpoint
	nlpClient, err := nlp.InitLanguageClient()
	if err != nil {
		log.Fatalf("Failed to create Natural Language client: %v", err)
	}
	defer nlp.CloseLanguageClient()

	openaiClient := openai.NewClient(os.Getenv("OPENAI_API_KEY"))

	// Initialize cron jobs
	cronjobs.InitCronJobs(store)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(store, clf, firestoreClient, nlpClient, openaiClient)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
