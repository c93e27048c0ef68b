package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Go-Toolbox/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Toolbox"
	AppID             = "com.github.tartampluch.go-toolbox"
	KeyringService    = "com.github.tartampluch.go-toolbox"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
	SettingsFileName  = "settings.yaml"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Commands, Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	CmdRoot     = "go-toolbox"
	CmdAge      = "age"
	CmdLive     = "live"
	CmdContacts = "contacts"
	CmdServe    = "serve"
	CmdGUI      = "gui"
	CmdTool     = "tool"
	CmdVersion  = "version"

	FlagDebug    = "debug"
	FlagConfig   = "config"
	FlagStart    = "start"
	FlagAsOf     = "as-of"
	FlagLang     = "lang"
	FlagPort     = "port"
	FlagInterval = "interval"
	FlagPath     = "path"
	FlagURL      = "url"
	FlagUser     = "user"
	FlagMode     = "mode"
	FlagLength   = "length"
	FlagSymbols  = "symbols"
	FlagCase     = "case"

	FlagDescDebug    = "Enable debug logging"
	FlagDescConfig   = "Path to the settings file (YAML)"
	FlagDescStart    = "Start instant (date or date-time)"
	FlagDescAsOf     = "Reference instant (defaults to now)"
	FlagDescLang     = "Output language (ISO 639-1)"
	FlagDescPort     = "HTTP port on localhost"
	FlagDescInterval = "Refresh interval of the live display"
	FlagDescPath     = "Local vCard file"
	FlagDescURL      = "Remote vCard URL (CardDAV/WebDAV)"
	FlagDescUser     = "HTTP Basic Auth user (password read from the OS keyring)"
	FlagDescMode     = "Conversion mode"
	FlagDescLength   = "Password length"
	FlagDescSymbols  = "Include symbols"
	FlagDescCase     = "Also convert the text case (upper, lower, title, sentence, camel, snake, kebab, toggle)"

	CmdBase64   = "base64 [text]"
	CmdText     = "text [text]"
	CmdPassword = "password"
	CmdBMI      = "bmi <weight-kg> <height-cm>"
	CmdConvert  = "convert <value> <from> <to>"
	CmdTimezone = "timezone <from-zone> <to-zone> [time]"

	ShortRoot     = "Elapsed time between dates, anniversary calendar and small utilities"
	ShortAge      = "Print the time elapsed between two instants"
	ShortLive     = "Print the elapsed time continuously until interrupted"
	ShortContacts = "List the upcoming anniversaries of a vCard source"
	ShortServe    = "Serve the anniversary calendar and the JSON API on localhost"
	ShortGUI      = "Start the desktop application"
	ShortTool     = "Small utilities"
	ShortVersion  = "Print version information"
	ShortBase64   = "Encode or decode base64 (reads stdin without argument)"
	ShortText     = "Count characters, words and sentences (reads stdin without argument)"
	ShortPassword = "Generate a random password"
	ShortBMI      = "Compute the body mass index"
	ShortConvert  = "Convert a value between units"
	ShortTimezone = "Move a wall-clock time to another zone (defaults to now)"

	// CLI output
	CLILabelFormat = "%s:"
	CLINextFormat  = "%s (%s)"
	CLIKeyValue    = "%-22s %v\n"
	CLIResult      = "%s\n"
	CLIBMIFormat   = "%.1f (%s)\n"
	CLIConvFormat  = "%g %s = %g %s\n"
	CLIUnitsHint   = "%s units: %s\n"
	CLITZFormat    = "%s\n%s\n%v\n"
	CLITimeLayout  = "2006-01-02 15:04:05 MST"
	CLIClearLine   = "\r\033[K"
	CLILiveFormat  = "%s%s  %s"
	CLIMaxInput    = 1 << 20

	LabelCharacters = "characters"
	LabelNoSpaces   = "characters (no spaces)"
	LabelWords      = "words"
	LabelSentences  = "sentences"
	LabelParagraphs = "paragraphs"
	LabelReadingMin = "reading time (min)"
	LabelConverted  = "converted"

	MsgVersionOutput = "%s version %s (%s, %s) %s/%s\n"
)

// -----------------------------------------------------------------------------
// UI Constants
// -----------------------------------------------------------------------------

const (
	AgeWinWidth       = 420
	AgeWinHeight      = 360
	ContactsWinWidth  = 680
	ContactsWinHeight = 400
	SettingsWinWidth  = 480

	// Table Column IDs
	ColIDName = 0
	ColIDKind = 1
	ColIDDate = 2
	ColIDAge  = 3
	ColCount  = 4

	// Table Layout
	ColWidthName = 250
	ColWidthKind = 130
	ColWidthDate = 130
	ColWidthAge  = 120

	PlaceholderURL     = "https://dav.example.com/addressbooks/me/contacts/"
	PlaceholderTrigger = "-P1D"
	HeaderPlaceholder  = "Header"

	DateFormatDisplay = "2006-01-02"
	TablePlaceholder  = "Cell Content"
	AgeUnknown        = "-"
	LogMsgOpenWin     = "Opening window"
	LogMsgSorted      = "Contacts sorted"

	SortIconAsc  = " ▲"
	SortIconDesc = " ▼"
)

// SupportedLanguages defines the list of available languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinAge       = "win_age_title"
	TKeyWinContacts  = "win_contacts_title"
	TKeyMenuAge      = "menu_age"
	TKeyMenuContacts = "menu_contacts"
	TKeyMenuRefresh  = "menu_refresh"
	TKeyLblStart     = "lbl_start"
	TKeyHelpStart    = "help_start"
	TKeyErrRange     = "err_invalid_range"
	TKeyErrInput     = "err_invalid_input"
	TKeyNotifError   = "notif_err_sync"

	// Units (plural aware, require Count)
	TKeyYears   = "unit_years"
	TKeyMonths  = "unit_months"
	TKeyWeeks   = "unit_weeks"
	TKeyDays    = "unit_days"
	TKeyHours   = "unit_hours"
	TKeyMinutes = "unit_minutes"
	TKeySeconds = "unit_seconds"

	// Sentences
	TKeyNextIn       = "fmt_next_in"       // Requires Count
	TKeyAnniversary  = "fmt_anniversary"   // Requires Count, Date
	TKeyEvtSummary   = "event_summary"     // Requires Name
	TKeyEvtSummaryN  = "event_summary_age" // Requires Name, Age
	TKeyEvtSummaryB  = "event_summary_birth"
	TKeyColName      = "col_name"
	TKeyColDate      = "col_date"
	TKeyColAge       = "col_age"
	TKeyFormatDate   = "format_date_short"
	TKeyAgeBirth     = "age_birth"
	TKeyLblTotals    = "lbl_totals"
	TKeyLblCalendar  = "lbl_calendar"
	TKeyLblNextEvent = "lbl_next"
	TKeyTrayStatus   = "tray_status" // Requires Count
	TKeyTrayZero     = "tray_status_zero"
	TKeyNotifStart   = "notif_sync_start"
	TKeyNotifSuccess = "notif_sync_success"

	// Settings window
	TKeyMenuSettings = "menu_settings"
	TKeyWinSettings  = "win_settings_title"
	TKeyLblLanguage  = "lbl_language"
	TKeyLblRefresh   = "lbl_refresh"
	TKeyLblMinutes   = "lbl_minutes"
	TKeyLblPort      = "lbl_port"
	TKeyHelpPort     = "help_port"
	TKeyLblSource    = "lbl_source"
	TKeyModeNone     = "mode_none"
	TKeyModeWeb      = "mode_web"
	TKeyModeLocal    = "mode_local"
	TKeyLblURL       = "lbl_url"
	TKeyLblUser      = "lbl_user"
	TKeyLblPass      = "lbl_pass"
	TKeyLblPath      = "lbl_path"
	TKeyBtnBrowse    = "btn_browse"
	TKeyLblReminder  = "lbl_reminder"
	TKeyHelpReminder = "help_reminder"
	TKeyBtnSave      = "btn_save"
	TKeyBtnCancel    = "btn_cancel"
	TKeyErrPort      = "err_port"
	TKeyErrSave      = "err_settings_save"
	TKeyColKind      = "col_kind"
	TKeyKindBirthday = "kind_birthday"
	TKeyKindAnniv    = "kind_anniversary"
)

// ListSeparator joins the parts of a rendered breakdown.
const ListSeparator = ", "

// FormatAgeTransition renders "previous → next" in the contacts views.
const FormatAgeTransition = "%s → %d"

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	SourceModeWeb       = "web"
	SourceModeLocal     = "local"
	SourceModeNone      = ""
	DefaultPort         = "18080"
	DefaultRefreshMin   = 60
	DefaultLanguage     = "en"
	DefaultLeapYear     = 2000 // Leap year fallback for dates like --02-29
	DefaultLiveInterval = time.Second
	MinLiveInterval     = 100 * time.Millisecond
	WatchDebounce       = 250 * time.Millisecond
	UIDSalt             = "go-toolbox-v1-" // Salt for deterministic UID generation

	// Calendar constants
	MonthsPerYear   = 12
	MillisPerSecond = int64(1000)
	MillisPerMinute = 60 * MillisPerSecond
	MillisPerHour   = 60 * MillisPerMinute
	MillisPerDay    = 24 * MillisPerHour
	MillisPerWeek   = 7 * MillisPerDay

	// Text statistics
	WordsPerMinute = 200

	// Text case modes
	CaseUpper    = "upper"
	CaseLower    = "lower"
	CaseTitle    = "title"
	CaseSentence = "sentence"
	CaseCamel    = "camel"
	CaseSnake    = "snake"
	CaseKebab    = "kebab"
	CaseToggle   = "toggle"

	// Password generator
	PasswordMinLength     = 4
	PasswordMaxLength     = 128
	PasswordDefaultLength = 16
	PasswordLower         = "abcdefghijklmnopqrstuvwxyz"
	PasswordUpper         = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	PasswordDigits        = "0123456789"
	PasswordSymbols       = "!@#$%^&*()-_=+[]{};:,.?/"

	// BMI thresholds (WHO adult classification)
	BMIUnderweight   = 18.5
	BMINormal        = 25.0
	BMIOverweight    = 30.0
	BMICategoryLow   = "underweight"
	BMICategoryOK    = "normal"
	BMICategoryOver  = "overweight"
	BMICategoryObese = "obese"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Toolbox//Anniversaries//EN"
	ICalCalName   = "Anniversaries"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "gotoolbox"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	VCardBDAY        = "BDAY"
	VCardAnniversary = "ANNIVERSARY"
	VCardFN          = "FN"
	VCardN           = "N"

	DefaultICalRefresh = 1 * time.Hour
)

// -----------------------------------------------------------------------------
// Data Formats, Limits & File Extensions
// -----------------------------------------------------------------------------

const (
	// Input layouts accepted by the date parser.
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatLocalT    = "2006-01-02T15:04:05"
	DateFormatLocalTM   = "2006-01-02T15:04"
	DateFormatSpaced    = "2006-01-02 15:04:05"
	DateFormatDayFirst  = "02/01/2006"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	// Limits
	MinPort = 1
	MaxPort = 65535

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"

	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	RequestTimeout      = 15 * time.Second
	RetryAfterSeconds   = "10"
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 256 * 1024 * 1024 // 256MB
	MaxQueryTextLength  = 64 * 1024
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	AddrSeparator       = ":"

	RouteCalendar = "/calendar.ics"
	RouteHealth   = "/healthz"
	RouteMetrics  = "/metrics"
	RouteAPI      = "/api/v1"
	RouteAge      = "/age"
	RouteTools    = "/tools"
	RouteBase64   = "/base64"
	RouteText     = "/text"
	RoutePassword = "/password"
	RouteBMI      = "/bmi"
	RouteConvert  = "/convert"
	RouteTimezone = "/timezone"

	QueryStart    = "start"
	QueryAsOf     = "asOf"
	QueryLang     = "lang"
	QueryMode     = "mode"
	QueryText     = "text"
	QueryCase     = "case"
	QueryLength   = "length"
	QuerySymbols  = "symbols"
	QueryWeight   = "weight"
	QueryHeight   = "height"
	QueryValue    = "value"
	QueryFrom     = "from"
	QueryTo       = "to"
	QueryTime     = "time"
	ModeEncode    = "encode"
	ModeDecode    = "decode"
	HealthBody    = "ok"
	MetricsPrefix = "gotoolbox"

	// Prometheus series and labels
	MetricRequests     = MetricsPrefix + "_http_requests_total"
	MetricLatency      = MetricsPrefix + "_http_request_duration_seconds"
	MetricAgeResults   = MetricsPrefix + "_age_computations_total"
	MetricFeedSyncs    = MetricsPrefix + "_feed_syncs_total"
	MetricFeedEntries  = MetricsPrefix + "_feed_entries"
	MetricLabelRoute   = "route"
	MetricLabelMethod  = "method"
	MetricLabelStatus  = "status"
	MetricLabelResult  = "result"
	RouteUnmatched     = "unmatched"
	ResultOK           = "ok"
	ResultInvalidRange = "invalid_range"
	ResultBadInput     = "bad_input"
	ResultError        = "error"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"
	HeaderRequestID       = "X-Request-ID"
	HeaderAcceptLang      = "Accept-Language"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeJSON            = "application/json"
	MimeTextPlain       = "text/plain; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrLocalPathEmpty   = "configuration error: local path is empty"
	ErrWebURLEmpty      = "configuration error: web URL is empty"
	ErrFetcherMissing   = "internal error: network fetcher is not initialized"
	ErrModeUnsupport    = "configuration error: unsupported source mode"
	ErrServerStartup    = "server startup failed"
	ErrServerShutdown   = "server shutdown failed"
	ErrPortRequired     = "server port is required"
	ErrPortNumber       = "server port must be a number"
	ErrPortRange        = "server port must be between 1 and 65535"
	ErrLanguage         = "unsupported language"
	ErrLiveInterval     = "live interval is too short"
	ErrRefreshInterval  = "refresh interval must be positive"
	ErrSettingsRead     = "failed to read settings file"
	ErrSettingsParse    = "failed to parse settings file"
	ErrSettingsWrite    = "failed to write settings file"
	ErrKeyring          = "failed to store credentials in keyring"
	ErrInvalidURL       = "invalid URL structure"
	ErrProtocol         = "unsupported protocol scheme (http/https only)"
	ErrFetchRequest     = "failed to create vCard request"
	ErrFetchNetwork     = "network error during vCard fetch"
	ErrFetchStatus      = "vCard source returned an unexpected status"
	ErrFetchTooLarge    = "vCard source exceeds the size limit"
	ErrVCardParse       = "failed to parse vCard stream"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrDateParse        = "unable to parse date"
	ErrDateMissing      = "a start date is required"
	ErrInvalidRange     = "start instant is after the reference instant"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrConfigDir        = "could not determine user config dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrWriteResp        = "failed to write response body"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrLocNotInit       = "localizer not initialized"
	ErrTrayNotSupported = "system tray not supported on this platform/driver"
	ErrUnknownUnit      = "unknown unit"
	ErrUnitMismatch     = "units measure different quantities"
	ErrBase64Decode     = "input is not valid base64"
	ErrBase64Binary     = "decoded data is not UTF-8 text"
	ErrUnknownCase      = "unknown case mode"
	ErrPasswordLength   = "password length out of range"
	ErrPasswordClasses  = "at least one character class is required"
	ErrRandom           = "random source failure"
	ErrBMIInput         = "weight and height must be positive"
	ErrTimezone         = "unknown time zone"
	ErrNumber           = "invalid number"
	ErrTextTooLong      = "text input is too long"
	ErrUnknownMode      = "unknown mode"
	ErrWatch            = "failed to watch settings file"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Calendar initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
	HTTPMsgInternalErr  = "Internal Server Error"
	HTTPMsgTimeout      = "Request timed out"
	HTTPCodeBadRequest  = "bad_request"
	HTTPCodeRange       = "invalid_range"
	HTTPCodeInternal    = "internal_error"
)

// -----------------------------------------------------------------------------
// Fallbacks & Log Messages
// -----------------------------------------------------------------------------

const (
	FallbackSummary      = "Anniversary: %s"
	FallbackSummaryAge   = "Anniversary: %s (%d)"
	FallbackSummaryBirth = "Anniversary: %s (birth)"
	FallbackName         = "Unknown"
	FallbackBirth        = "Birth"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	MsgPortBusy      = "Port %s is busy or unavailable."
	MsgSyncStarted   = "Synchronization started..."
	MsgSyncFailed    = "Synchronization failed. Check logs."
	MsgSyncReq       = "Sync requested"
	MsgSyncSkipped   = "No vCard source configured, feed stays empty"
	MsgSyncDone      = "Feed synchronized"
	MsgSyncCancelled = "Synchronization cancelled"
	MsgSyncFinished  = "Sync finished"
	MsgFetchStart    = "Downloading vCards"
	MsgFetchStatus   = "vCard source answered with an error status"
	MsgFetchBody     = "vCard download accepted"
	MsgUpdateSync    = "Refresh interval changed"
	MsgWorkerStart   = "Background worker started"
	MsgWorkerStop    = "Worker stopping due to context cancellation"
	MsgTickerStart   = "Live ticker started"
	MsgTickerStop    = "Live ticker stopped"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedDate   = "Skipping invalid date format"
	MsgGenSuccess    = "Calendar generation successful"
	MsgAppStarting   = "Starting application"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgCacheUpdated  = "Calendar cache updated"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgPassFail      = "Password retrieval failed (might be empty)"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgAnnivToday    = "Anniversary found today"
	MsgSettingsLoad  = "Settings loaded"
	MsgSettingsNone  = "No settings file, using defaults"
	MsgSettingsSaved = "Settings saved"
	MsgRequest       = "HTTP request"
	MsgPanic         = "Recovered from panic"
	MsgRangeRejected = "Rejected out-of-order instants"
	MsgWatchStart    = "Watching settings file"
	MsgWatchReload   = "Settings file changed, reloading"
	MsgWatchInvalid  = "Ignoring invalid settings file"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyMode      = "mode"
	LogKeyInterval  = "interval"
	LogKeyUser      = "user"
	LogKeyTotal     = "total_cards"
	LogKeyFound     = "dates_found"
	LogKeyToday     = "anniversaries_today"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyManual    = "manual"
	LogKeyValue     = "value"
	LogKeyStats     = "stats"
	LogKeySortCol   = "sort_column"
	LogKeySortAsc   = "sort_asc"
	LogKeyCount     = "count"
	LogKeyName      = "name"
	LogKeyDOB       = "date_of_birth"
	LogKeyDuration  = "duration_ms"
	LogKeyStart     = "start"
	LogKeyAsOf      = "as_of"
	LogKeyMethod    = "method"
	LogKeyPath      = "path"
	LogKeyRequestID = "request_id"
	LogKeyWindow    = "window"
	LogKeyRemote    = "remote_addr"
	LogKeyStack     = "stack"
	LogKeyOld       = "old"
	LogKeyNew       = "new"
	LogKeyEntries   = "entries"
	LogKeyOp        = "op"

	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI      = "ui"
	CompEngine  = "engine"
	CompServer  = "server"
	CompFetcher = "fetcher"
	CompWorker  = "worker"
	CompTicker  = "ticker"
	CompMain    = "main"
	CompI18n    = "i18n"
	CompConfig  = "config"
	CompWatch   = "watch"
)
