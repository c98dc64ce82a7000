package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"event-bot/internal/extractor"
	"event-bot/internal/llm"
	"event-bot/internal/session"
)

func main() {
	// Parse command line flags
	pdfPath := flag.String("pdf", "", "Path to the event PDF with event details and resumes")
	ollamaHost := flag.String("ollama", "", "Ollama host (default uses OLLAMA_HOST env var)")
	model := flag.String("model", "phi3-mini", "Ollama model for fallback answers")
	configPath := flag.String("config", "", "YAML file overriding the extractor defaults")
	timeout := flag.Duration("timeout", llm.DefaultTimeout, "Timeout for a single fallback completion")
	interactive := flag.Bool("i", false, "Run in interactive mode")
	questionFlag := flag.String("q", "", "Question to answer (non-interactive mode)")
	flag.Parse()

	if *pdfPath == "" {
		log.Fatal("An event PDF is required. Use -pdf path/to/event.pdf")
	}

	cfg := extractor.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = extractor.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// Create LLM fallback client
	llmClient, err := llm.NewOllamaLLM(*ollamaHost, *model)
	if err != nil {
		log.Fatalf("Failed to create LLM client: %v", err)
	}
	llmClient.Timeout = *timeout

	// Create context
	ctx := context.Background()

	// Initialize the session from the document; this is the only fatal path
	sess := session.New(cfg, nil, llmClient)
	facts, err := sess.InitializeFromFile(*pdfPath)
	if err != nil {
		log.Fatalf("Failed to process event document: %v", err)
	}

	if *interactive {
		runInteractiveMode(ctx, sess, facts.Title)
	} else {
		if *questionFlag == "" {
			log.Fatal("Question is required in non-interactive mode. Use -q 'your question'")
		}

		fmt.Println(sess.Ask(ctx, *questionFlag))
	}
}

func runInteractiveMode(ctx context.Context, sess *session.Session, title string) {
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Welcome to the Event Bot for %s!\n", title)
	fmt.Println("I can help you with information about the event, schedule, participants, and more.")
	fmt.Println("Type 'exit' or 'quit' to end the conversation.")
	fmt.Println(strings.Repeat("=", 50))

	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "exit", "quit", "bye", "goodbye":
			fmt.Println("\nEvent Bot: Thank you for using the Event Bot. Have a great day!")
			return
		}

		if strings.ToLower(input) == "/facts" {
			printFacts(sess)
			continue
		}

		startTime := time.Now()
		answer := sess.Ask(ctx, input)
		log.Printf("Question answered in %v", time.Since(startTime))

		fmt.Printf("\nEvent Bot: %s\n", answer)
	}
}

func printFacts(sess *session.Session) {
	facts := sess.Facts()

	fmt.Printf("\nTitle: %s\nDate: %s\nVenue: %s\n", facts.Title, facts.Date, facts.Location.FullAddress)
	fmt.Println("Agenda:")
	for _, entry := range facts.Agenda {
		fmt.Printf("  %s: %s\n", entry.Time, entry.Activity)
	}
	fmt.Printf("Participants: %d\n", len(sess.Participants()))
}
