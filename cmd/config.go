package cmd

type Config struct {
	HTTPPort        string
	DefaultLayout   string
	HistoryCapacity int
	OrderJobEnabled bool
}
