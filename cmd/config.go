package cmd

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	InsurancePercent       string
	TaxPercent             string
	MetricsRefreshSchedule string
	CustomsBacklogSchedule string
}
