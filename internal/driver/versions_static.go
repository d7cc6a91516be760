package driver

// staticVersions is the bundled runtime-to-engine version table, used only
// when the remote feed is unreachable. It covers the .0 release of each
// runtime major and is refreshed by hand from the feed at release time, so
// it may lag behind; the feed remains authoritative.
var staticVersions = map[string]string{
	"13.0.0": "91.0.4472.69",
	"14.0.0": "93.0.4577.58",
	"15.0.0": "94.0.4606.51",
	"16.0.0": "96.0.4664.45",
	"17.0.0": "98.0.4758.74",
	"18.0.0": "100.0.4896.56",
	"19.0.0": "102.0.5005.61",
	"20.0.0": "104.0.5112.65",
	"21.0.0": "106.0.5249.51",
	"22.0.0": "108.0.5359.62",
	"23.0.0": "110.0.5481.77",
	"24.0.0": "112.0.5615.49",
	"25.0.0": "114.0.5735.45",
	"26.0.0": "116.0.5845.82",
	"27.0.0": "118.0.5993.54",
	"28.0.0": "120.0.6099.56",
	"29.0.0": "122.0.6261.39",
	"30.0.0": "124.0.6367.49",
	"31.0.0": "126.0.6478.36",
}

// staticVersionMap returns a copy of the bundled table so callers can't
// mutate the shared map.
func staticVersionMap() map[string]string {
	versions := make(map[string]string, len(staticVersions))
	for runtimeVersion, chrome := range staticVersions {
		versions[runtimeVersion] = chrome
	}
	return versions
}
