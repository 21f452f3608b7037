package valueobjects

import (
	"fmt"
	"time"
	_ "time/tzdata" // garante Asia/Jakarta em imagens sem zoneinfo
)

// CivilTimestampLayout é o formato YYYY-MM-DD HH:mm:ss usado em tbl_history.tanggal
const CivilTimestampLayout = "2006-01-02 15:04:05"

// DefaultTimeZone é o fuso usado para registrar históricos
const DefaultTimeZone = "Asia/Jakarta"

// LoadTimeZone carrega o fuso configurado
func LoadTimeZone(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimeZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %s: %w", name, err)
	}
	return loc, nil
}

// CivilTimestamp formata o instante no fuso informado
func CivilTimestamp(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(CivilTimestampLayout)
}
