package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/fenotesb/helping-hands-platform/internal/errs"
)

const (
	defaultPayPalBaseURL  = "https://api-m.sandbox.paypal.com"
	defaultVolunteerTable = "HelpingHands_Volunteers"
	defaultDonationTable  = "HelpingHands_Donations"
)

// Config holds everything a handler reads from its environment. It is loaded
// once per invocation; nothing else in the codebase touches os.Getenv.
type Config struct {
	PayPalClientID string
	PayPalSecret   string
	PayPalBaseURL  string
	VolunteerTable string
	DonationTable  string
}

// Load reads configuration from the process environment. A .env file is
// honored when present so local runs match Lambda.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		PayPalClientID: os.Getenv("PAYPAL_CLIENT_ID"),
		PayPalSecret:   firstNonEmpty(os.Getenv("PAYPAL_SECRET"), os.Getenv("PAYPAL_CLIENT_SECRET")),
		PayPalBaseURL:  firstNonEmpty(os.Getenv("PAYPAL_BASE_URL"), defaultPayPalBaseURL),
		VolunteerTable: firstNonEmpty(os.Getenv("VOLUNTEER_TABLE"), defaultVolunteerTable),
		DonationTable:  firstNonEmpty(os.Getenv("DONATION_TABLE"), defaultDonationTable),
	}
}

// ValidatePayPal fails when the PayPal credentials are incomplete. The error
// names the variables, never their values.
func (c *Config) ValidatePayPal() error {
	if c.PayPalClientID == "" || c.PayPalSecret == "" {
		return errs.Configuration("PAYPAL_CLIENT_ID and PAYPAL_SECRET (or PAYPAL_CLIENT_SECRET) must be set")
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
