package contact

// Config holds the contact endpoint settings.
type Config struct {
	// OwnerEmail receives notifications. cmd falls back to the mail account (EMAIL) when empty.
	OwnerEmail string `env:"CONTACT_OWNER_EMAIL"`
}
