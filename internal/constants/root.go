package constants

const (
	AppName           = "pcod-tracker"
	AppTitle          = "CR Wellness · PCOD Lifestyle Tracker"
	Version           = "v0.3.0"
	DefaultDataPath   = "~/.local/share/pcod-tracker/pcod_data.csv"
	DefaultConfigPath = "~/.config/pcod-tracker/config.yaml"
	DataFileName      = "pcod_data.csv"
	ExportFileBase    = "pcod_data_export"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DisplayTimestampFormat is used when showing saved_at to the user
	DisplayTimestampFormat = "2006-01-02 15:04:05"

	// TempFilePrefix prefixes the scratch file used by atomic writes
	TempFilePrefix = "tmp_pcod_"

	// Write path constants
	SaveRetries     = 2
	MaxSaveAttempts = SaveRetries + 1

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "pcod-data-"
	BackupFileSuffix = ".csv"

	// Form bounds
	MinWaterGlasses    = 0
	MaxWaterGlasses    = 20
	MinEnergyLevel     = 1
	MaxEnergyLevel     = 5
	DefaultEnergyLevel = 3

	// Windows used by the insights views
	WaterWindowDays = 7
	CountWindowDays = 30
)

// Columns is the fixed ordered schema of the data file.
var Columns = []string{
	"date",
	"exercise",
	"water_glasses",
	"notes",
	"mood",
	"cramps",
	"bloating",
	"energy_level",
	"saved_at",
}
