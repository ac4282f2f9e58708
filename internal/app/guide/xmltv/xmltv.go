// Package xmltv implements the XMLTV source adapter: documents of
// <tv><programme start=".." stop=".." channel=".."> elements with nested
// title, desc, category, rating and credits children.
package xmltv

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/guide"
)

// compact timestamp token used by the start/stop attributes, an optional
// timezone suffix is ignored
const tokenLayout = "20060102150405"

type tvDocument struct {
	XMLName    xml.Name    `xml:"tv"`
	Programmes []programme `xml:"programme"`
}

type programme struct {
	Start   string   `xml:"start,attr"`
	Stop    string   `xml:"stop,attr"`
	Channel string   `xml:"channel,attr"`
	Titles  []string `xml:"title"`
	Descs   []string `xml:"desc"`
	Genres  []string `xml:"category"`
	Rating  struct {
		Value string `xml:"value"`
	} `xml:"rating"`
	Credits struct {
		Actors    []string `xml:"actor"`
		Directors []string `xml:"director"`
	} `xml:"credits"`
	Icon struct {
		Src string `xml:"src,attr"`
	} `xml:"icon"`
	Icons struct {
		Src string `xml:"src,attr"`
	} `xml:"icons"`
}

// Adapter parses an XMLTV feed. For single-channel feeds ChannelID scopes
// every airing; for multi-channel feeds ChannelMap is the allow-list
// translating source channel ids to internal ones, and airings of unmapped
// channels are dropped silently.
type Adapter struct {
	ChannelID  string
	ChannelMap map[string]string
}

func (a *Adapter) Parse(path string) ([]guide.RawAiring, error) {
	logger := zap.L()

	f, err := os.Open(path)
	if err != nil {
		return nil, guide.NewParseError(path, err)
	}
	defer f.Close()

	decoder := xml.NewDecoder(f)
	decoder.CharsetReader = charset.NewReaderLabel

	var doc tvDocument
	if err = decoder.Decode(&doc); err != nil {
		return nil, guide.NewParseError(path, err)
	}

	var airings []guide.RawAiring
	for _, prog := range doc.Programmes {
		channelID := a.ChannelID
		if a.ChannelMap != nil {
			mapped, ok := a.ChannelMap[prog.Channel]
			if !ok {
				logger.Info("Channel is not in the mapping, programme dropped.",
					zap.String("sourceChannel", prog.Channel))
				continue
			}
			channelID = mapped
		} else if channelID == "" {
			channelID = prog.Channel
		}

		title := ""
		if len(prog.Titles) > 0 {
			title = guide.CleanTitle(prog.Titles[0])
		}
		if title == "" {
			logger.Debug("Skipping programme without a title.", zap.String("start", prog.Start))
			continue
		}

		start, err := parseToken(prog.Start)
		if err != nil {
			logger.Debug("Skipping programme with a bad start token.",
				zap.String("program", title), zap.Error(err))
			continue
		}
		stop, err := parseToken(prog.Stop)
		if err != nil {
			logger.Debug("Skipping programme with a bad stop token.",
				zap.String("program", title), zap.Error(err))
			continue
		}

		airing := guide.RawAiring{
			ChannelID:      channelID,
			Title:          title,
			Date:           guide.Date(start.Year(), start.Month(), start.Day()),
			StartTime:      start.Format("15:04:05"),
			StopTime:       stop.Format("15:04:05"),
			Genre:          strings.Join(prog.Genres, ", "),
			Classification: strings.TrimSpace(prog.Rating.Value),
			Actors:         strings.Join(prog.Credits.Actors, ", "),
			Directors:      strings.Join(prog.Credits.Directors, ", "),
		}
		if len(prog.Descs) > 0 {
			airing.Description = strings.TrimSpace(prog.Descs[0])
		}
		if prog.Icon.Src != "" {
			airing.ImageURL = prog.Icon.Src
		} else {
			airing.ImageURL = prog.Icons.Src
		}
		airings = append(airings, airing)
	}

	if len(airings) == 0 {
		return nil, guide.NewParseError(path, guide.ErrNoAirings)
	}
	return airings, nil
}

// parseToken reads the leading YYYYMMDDHHMMSS portion of a start/stop
// attribute.
func parseToken(token string) (time.Time, error) {
	token = strings.TrimSpace(token)
	if len(token) < len(tokenLayout) {
		return time.Time{}, fmt.Errorf("timestamp token too short: %q", token)
	}
	return time.Parse(tokenLayout, token[:len(tokenLayout)])
}
