// Package constants contains application-wide constants to avoid magic numbers and strings.
package constants

// Application defaults
const (
	AppName              = "musicshelf"
	DefaultDBPath        = "music_collection.db"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultEnvFile       = ".env"
	DefaultScanFormat    = FormatDigital
	DefaultSuggestCount  = 1
	DefaultGenreSplitSet = ",;/"
)

// Formats accepted by the single-album add flow
const (
	FormatCD       = "CD"
	FormatVinyl    = "vinyl"
	FormatCassette = "cassette"
	FormatDigital  = "digital"
)

// AllowedFormats lists the formats a user may pick when adding an album by hand.
var AllowedFormats = []string{FormatCD, FormatVinyl, FormatCassette, FormatDigital}

// Database tables with a single unique name column
const (
	ArtistsTable = "artists"
	FormatsTable = "formats"
	GenresTable  = "genres"
)

// Year bounds for user-entered release years
const (
	MinYear = 1000
	MaxYear = 9999
)

// File system
const (
	DirPermissions = 0755
)

// File Extensions
const (
	ExtFLAC = ".flac"
	ExtMP3  = ".mp3"
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
)
