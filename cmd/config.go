package cmd

// Config carries everything the service reads from its environment:
// HTTP bind port, database connection settings and the admin JWT secret.
type Config struct {
	HTTPPort     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSslMode    string
	JWTSecret    string
	JWTAccessTTL string
}
