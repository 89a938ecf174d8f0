package tagging

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"

	"github.com/cesargomez89/musicshelf/internal/constants"
)

// Tag holds the album-level fields of one audio file.
type Tag struct {
	Path        string
	Album       string
	Artist      string
	AlbumArtist string
	Date        string
	Genre       string
}

// Year returns the leading four digits of Date, or 0.
func (t *Tag) Year() int {
	if len(t.Date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(t.Date[:4])
	if err != nil {
		return 0
	}
	return year
}

// ReadTag reads album metadata from the audio file at filePath.
func ReadTag(filePath string) (*Tag, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	var (
		t   *Tag
		err error
	)
	switch ext {
	case constants.ExtFLAC:
		t, err = readFLAC(filePath)
	case constants.ExtMP3:
		t, err = readMP3(filePath)
	default:
		return nil, fmt.Errorf("unsupported file format: %s", ext)
	}
	if err != nil {
		return nil, err
	}

	t.Path = filePath
	t.Album = strings.TrimSpace(t.Album)
	t.Artist = strings.TrimSpace(t.Artist)
	t.AlbumArtist = strings.TrimSpace(t.AlbumArtist)
	if t.AlbumArtist == "" {
		t.AlbumArtist = t.Artist
	}
	return t, nil
}

// IsSupported reports whether ReadTag understands the file's extension.
func IsSupported(filePath string) bool {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case constants.ExtFLAC, constants.ExtMP3:
		return true
	}
	return false
}

func readMP3(filePath string) (*Tag, error) {
	tag, err := id3v2.Open(filePath, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open MP3 file: %w", err)
	}
	defer tag.Close()

	date := tag.Year()
	if date == "" {
		// ID3v2.4 recording time
		date = textFrame(tag, "TDRC")
	}

	return &Tag{
		Album:       tag.Album(),
		Artist:      tag.Artist(),
		AlbumArtist: textFrame(tag, "TPE2"),
		Date:        date,
		Genre:       tag.Genre(),
	}, nil
}

func textFrame(tag *id3v2.Tag, id string) string {
	frames := tag.GetFrames(id)
	if len(frames) == 0 {
		return ""
	}
	if tf, ok := frames[0].(id3v2.TextFrame); ok {
		return tf.Text
	}
	return ""
}

func readFLAC(filePath string) (*Tag, error) {
	f, err := flac.ParseFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open FLAC file: %w", err)
	}

	t := &Tag{}
	for _, meta := range f.Meta {
		if meta.Type != flac.VorbisComment {
			continue
		}
		cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return nil, fmt.Errorf("failed to parse vorbis comments: %w", err)
		}
		t.Album = firstComment(cmts, flacvorbis.FIELD_ALBUM)
		t.Artist = firstComment(cmts, flacvorbis.FIELD_ARTIST)
		t.AlbumArtist = firstComment(cmts, "ALBUMARTIST")
		t.Date = firstComment(cmts, flacvorbis.FIELD_DATE)
		if t.Date == "" {
			t.Date = firstComment(cmts, "YEAR")
		}
		// Multiple GENRE comments are joined so they split like one list.
		genres, _ := cmts.Get(flacvorbis.FIELD_GENRE)
		t.Genre = strings.Join(genres, ";")
		break
	}
	return t, nil
}

func firstComment(cmts *flacvorbis.MetaDataBlockVorbisComment, key string) string {
	values, err := cmts.Get(key)
	if err != nil || len(values) == 0 {
		return ""
	}
	return values[0]
}
