package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	RiderPhone string
	AdminPhone string
	JWTSecret  string
	MenuFile   string
	ZonesFile  string
	UploadDir  string
}
