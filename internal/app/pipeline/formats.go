package pipeline

import (
	"fmt"

	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/config"
	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/guide"
	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/guide/colxml"
	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/guide/sheet"
	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/guide/xmltv"
)

// Format names as the CMS reports them in file_format_type. Each historical
// converter is a configuration of one of the shared adapter engines.
const (
	formatModelo1     = "modelo1"
	formatModelo2     = "modelo2"
	formatModelo3     = "modelo3"
	formatIstv        = "istv"
	formatXls         = "xls"
	formatSdptv       = "sdptv"
	formatTraveltv    = "traveltv"
	formatXML         = "xml"
	formatModeloXML0  = "modeloxml0"
	formatModeloXML1  = "modeloxml1"
	formatModeloXMLAl = "modeloxmlall"
)

// sheet names the spreadsheet exports usually carry
const (
	defaultGridSheet  = "Planilha1"
	defaultSdptvSheet = "Programação"
	sdptvTitleColumn  = 2
)

// NewAdapter builds the source adapter for a configured source.
func NewAdapter(src config.Source) (guide.Adapter, error) {
	switch src.Format {
	case formatModelo1, formatModelo2, formatIstv:
		sheetName := src.Sheet
		if sheetName == "" {
			sheetName = defaultGridSheet
		}
		return &sheet.WeekdayRows{ChannelID: src.ChannelID, SheetName: sheetName}, nil
	case formatXls:
		return &sheet.DaySheets{ChannelID: src.ChannelID}, nil
	case formatModelo3:
		return &sheet.DateRows{ChannelID: src.ChannelID, HasDescription: true}, nil
	case formatTraveltv:
		return &sheet.DateRows{ChannelID: src.ChannelID}, nil
	case formatSdptv:
		sheetName := src.Sheet
		if sheetName == "" {
			sheetName = defaultSdptvSheet
		}
		return &sheet.DayBlocks{ChannelID: src.ChannelID, SheetName: sheetName, DayColumn: sdptvTitleColumn}, nil
	case formatXML, formatModeloXML1:
		return &xmltv.Adapter{ChannelID: src.ChannelID}, nil
	case formatModeloXMLAl:
		return &xmltv.Adapter{ChannelMap: src.ChannelMap}, nil
	case formatModeloXML0:
		return &colxml.Adapter{ChannelID: src.ChannelID}, nil
	}
	return nil, fmt.Errorf("unknown source format %q", src.Format)
}
