package pipeline

import (
	"testing"

	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/config"
	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/guide/colxml"
	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/guide/sheet"
	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/guide/xmltv"
)

func TestNewAdapter(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{format: "modelo1", want: "*sheet.WeekdayRows"},
		{format: "modelo2", want: "*sheet.WeekdayRows"},
		{format: "istv", want: "*sheet.WeekdayRows"},
		{format: "xls", want: "*sheet.DaySheets"},
		{format: "modelo3", want: "*sheet.DateRows"},
		{format: "traveltv", want: "*sheet.DateRows"},
		{format: "sdptv", want: "*sheet.DayBlocks"},
		{format: "xml", want: "*xmltv.Adapter"},
		{format: "modeloxml1", want: "*xmltv.Adapter"},
		{format: "modeloxmlall", want: "*xmltv.Adapter"},
		{format: "modeloxml0", want: "*colxml.Adapter"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			adapter, err := NewAdapter(config.Source{Format: tt.format, ChannelID: "74"})
			if err != nil {
				t.Fatalf("NewAdapter(%q) error = %v", tt.format, err)
			}

			var got string
			switch adapter.(type) {
			case *sheet.WeekdayRows:
				got = "*sheet.WeekdayRows"
			case *sheet.DaySheets:
				got = "*sheet.DaySheets"
			case *sheet.DateRows:
				got = "*sheet.DateRows"
			case *sheet.DayBlocks:
				got = "*sheet.DayBlocks"
			case *xmltv.Adapter:
				got = "*xmltv.Adapter"
			case *colxml.Adapter:
				got = "*colxml.Adapter"
			}
			if got != tt.want {
				t.Errorf("NewAdapter(%q) = %s, want %s", tt.format, got, tt.want)
			}
		})
	}
}

func TestNewAdapterUnknownFormat(t *testing.T) {
	if _, err := NewAdapter(config.Source{Format: "modelo99"}); err == nil {
		t.Error("NewAdapter() with an unknown format did not fail")
	}
}

func TestNewAdapterSheetDefaults(t *testing.T) {
	adapter, err := NewAdapter(config.Source{Format: "modelo1", ChannelID: "74"})
	if err != nil {
		t.Fatalf("NewAdapter() error = %v", err)
	}
	if got := adapter.(*sheet.WeekdayRows).SheetName; got != "Planilha1" {
		t.Errorf("default sheet = %q, want Planilha1", got)
	}

	adapter, err = NewAdapter(config.Source{Format: "modelo1", ChannelID: "74", Sheet: "Grade"})
	if err != nil {
		t.Fatalf("NewAdapter() error = %v", err)
	}
	if got := adapter.(*sheet.WeekdayRows).SheetName; got != "Grade" {
		t.Errorf("configured sheet = %q, want Grade", got)
	}
}

func TestNewAdapterDescriptionColumn(t *testing.T) {
	adapter, err := NewAdapter(config.Source{Format: "modelo3"})
	if err != nil {
		t.Fatalf("NewAdapter() error = %v", err)
	}
	if !adapter.(*sheet.DateRows).HasDescription {
		t.Error("modelo3 adapter does not carry descriptions")
	}

	adapter, err = NewAdapter(config.Source{Format: "traveltv"})
	if err != nil {
		t.Fatalf("NewAdapter() error = %v", err)
	}
	if adapter.(*sheet.DateRows).HasDescription {
		t.Error("traveltv adapter unexpectedly carries descriptions")
	}
}

func TestNewAdapterChannelMap(t *testing.T) {
	cm := map[string]string{"5029": "245"}
	adapter, err := NewAdapter(config.Source{Format: "modeloxmlall", ChannelMap: cm})
	if err != nil {
		t.Fatalf("NewAdapter() error = %v", err)
	}
	if got := adapter.(*xmltv.Adapter).ChannelMap["5029"]; got != "245" {
		t.Errorf("ChannelMap[5029] = %q, want 245", got)
	}
}
