package constants

import "time"

// RatingAxis identifies one of the daily self-report dimensions
type RatingAxis string

// TrendDirection classifies how an axis moved week-over-week
type TrendDirection string

// TaskGroup identifies a commute phase in the daily checklist
type TaskGroup string

// TrafficStatus is the three-color congestion signal pushed to devices
type TrafficStatus string

const (
	AppName           = "commutewell"
	DefaultConfigPath = "~/.config/commutewell/commutewell.db"
	Version           = "v0.2.0"

	// Keyring entry for the OpenAI API key used by the prediction annotator
	KeyringOpenAIUser = "openai-api-key"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Rating axes
	AxisEnergy  RatingAxis = "energy"
	AxisStress  RatingAxis = "stress"
	AxisComfort RatingAxis = "comfort"

	// Rating bounds
	RatingMin = 1
	RatingMax = 5

	// NoteMaxLen caps free-text notes on check-ins and commute log entries
	NoteMaxLen = 200

	// Trend directions
	TrendImproving TrendDirection = "Improving"
	TrendDeclining TrendDirection = "Declining"
	TrendStable    TrendDirection = "Stable"

	// TrendThreshold is the minimum week-over-week average delta that
	// counts as movement; anything within it reads as Stable
	TrendThreshold = 0.3

	// TrendWindowDays is the default comparison window for trends
	TrendWindowDays = 7

	// Task groups
	GroupMorning TaskGroup = "morning"
	GroupDrive   TaskGroup = "drive"
	GroupEvening TaskGroup = "evening"

	// FallbackTotalTasks is the denominator shown before a day's checklist
	// has been materialized, so a fresh user never sees 0/0
	FallbackTotalTasks = 5

	// Score weights
	ScoreBase             = 50.0
	ScoreTaskWeight       = 30.0
	ScoreAxisWeight       = 7.0
	ScoreCheckinWindow    = 7
	ScoreStreakPerDay     = 2
	ScoreStreakCap        = 10
	ScoreCommutePenaltyHi = 10
	ScoreCommutePenaltyLo = 5

	// One-way commute minute thresholds for the score penalty
	CommutePenaltyHiMin = 180
	CommutePenaltyLoMin = 120

	// StreakScanDays bounds the backward scan when counting consecutive check-ins
	StreakScanDays = 365

	// Traffic statuses
	TrafficGreen  TrafficStatus = "green"
	TrafficYellow TrafficStatus = "yellow"
	TrafficRed    TrafficStatus = "red"

	// Congestion thresholds (0-100) for the traffic status colors
	CongestionRedAbove    = 80
	CongestionYellowAbove = 50

	// Device sync
	DefaultDeviceURL   = "http://192.168.1.154:5000/update"
	DefaultSyncQuiet   = 2 * time.Second
	DeviceSyncTimeout  = 5 * time.Second
	DeviceURLEnv       = "COMMUTEWELL_DEVICE_URL"
	DefaultServerPort  = "8080"
	OpenAIKeyEnv       = "OPENAI_API_KEY"
	OpenAIModelEnv     = "OPENAI_MODEL"
	DefaultOpenAIModel = "gpt-4o-mini"
)

// TrendGlyphs map directions to the arrows shown next to each axis
var TrendGlyphs = map[TrendDirection]string{
	TrendImproving: "↗",
	TrendDeclining: "↘",
	TrendStable:    "→",
}

// TaskGroups lists the checklist groups in display order
var TaskGroups = []TaskGroup{GroupMorning, GroupDrive, GroupEvening}

// FocusTips is the rotating default tip list, indexed by day of year,
// so the recommendation is stable for a calendar day rather than per session
var FocusTips = []string{
	"Take 5 deep breaths before starting your drive",
	"Pack a healthy snack for your commute",
	"Do a quick 2-minute stretch when you arrive",
	"Stay hydrated - bring a water bottle",
	"Listen to calming music during traffic",
}

// Focus prompts returned when an axis is declining, in priority order
const (
	FocusEnergyPrompt  = "Try a 5-minute stretch before driving today"
	FocusStressPrompt  = "Practice deep breathing: inhale 4, hold 4, exhale 4"
	FocusComfortPrompt = "Adjust your seat position and take breaks every 90 minutes"
)
