package lib

import "strings"
import "encoding/json"

// Parsecsv convert a string of comma separated values into list of
// trimmed, non-empty strings.
func Parsecsv(input string) []string {
	if input == "" {
		return nil
	}
	outs := make([]string, 0)
	for _, s := range strings.Split(input, ",") {
		if s = strings.TrimSpace(s); s != "" {
			outs = append(outs, s)
		}
	}
	return outs
}

// Prettystats marshal stats to json, indented if pretty is true. Stats
// are expected to contain only marshallable values, else Prettystats
// will panic.
func Prettystats(stats map[string]interface{}, pretty bool) string {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(stats, "", "  ")
	} else {
		data, err = json.Marshal(stats)
	}
	if err != nil {
		panic(err)
	}
	return string(data)
}
