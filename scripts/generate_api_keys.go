//go:build ignore

// Generates random API keys in the format read by API_KEYS.
// Run with: go run scripts/generate_api_keys.go -n 2
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"
)

func generateAPIKey(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	// Hex never yields the "," separator or a leading "-", which disables a key.
	return hex.EncodeToString(buf), nil
}

func main() {
	count := flag.Int("n", 1, "number of keys")
	length := flag.Int("bytes", 24, "random bytes per key")
	flag.Parse()

	if *count < 1 || *length < 16 {
		fmt.Fprintln(os.Stderr, "need -n >= 1 and -bytes >= 16")
		os.Exit(2)
	}

	keys := make([]string, 0, *count)
	for i := 0; i < *count; i++ {
		key, err := generateAPIKey(*length)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating API key: %v\n", err)
			os.Exit(1)
		}
		keys = append(keys, key)
	}

	fmt.Println("# Add to your .env file")
	fmt.Println("AUTH_ENABLED=true")
	fmt.Printf("API_KEYS=%s\n", strings.Join(keys, ","))
}
