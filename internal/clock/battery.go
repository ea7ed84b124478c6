package clock

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Battery is an optional battery reading for the indicator row.
type Battery struct {
	Percent  int
	Charging bool
}

const powerSupplyDir = "/sys/class/power_supply"

// ReadBattery reads the first BAT* entry under /sys/class/power_supply.
// Machines without a battery yield no value.
func ReadBattery() (Battery, bool) {
	return readBattery(powerSupplyDir)
}

func readBattery(dir string) (Battery, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Battery{}, false
	}

	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), "BAT") {
			continue
		}
		base := filepath.Join(dir, entry.Name())

		capData, err := os.ReadFile(filepath.Join(base, "capacity"))
		if err != nil {
			return Battery{}, false
		}
		percent, err := strconv.Atoi(strings.TrimSpace(string(capData)))
		if err != nil {
			return Battery{}, false
		}

		status := ""
		if statusData, err := os.ReadFile(filepath.Join(base, "status")); err == nil {
			status = strings.TrimSpace(string(statusData))
		}

		return Battery{
			Percent:  percent,
			Charging: status == "Charging" || status == "Full",
		}, true
	}

	return Battery{}, false
}
