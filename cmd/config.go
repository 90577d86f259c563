package cmd

type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	MarketAPIBaseURL string
	JWTSecret        string
	ServiceToken     string
	EpicerieID       int64
	RefreshSchedule  string
}
