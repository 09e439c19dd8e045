package config

import (
	"fmt"
	"os"

	supa "github.com/supabase-community/supabase-go"
)

// NewSupabaseClient initializes the Supabase client from environment
// variables. Both SUPABASE_URL and SUPABASE_SERVICE_KEY are required; there is
// deliberately no fallback key baked into the binary.
func NewSupabaseClient() (*supa.Client, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	if supabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL must be set")
	}

	supabaseKey := os.Getenv("SUPABASE_SERVICE_KEY")
	if supabaseKey == "" {
		return nil, fmt.Errorf("SUPABASE_SERVICE_KEY must be set")
	}

	client, err := supa.NewClient(supabaseURL, supabaseKey, nil)
	if err != nil {
		return nil, fmt.Errorf("initialize Supabase client: %w", err)
	}

	Log.Info("Supabase client initialized successfully.")
	return client, nil
}
