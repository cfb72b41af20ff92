// Package domain implements the weather probability scoring engine.
//
// # Data Source
//
// Raw measurements come from the NASA POWER daily point API
// (https://power.larc.nasa.gov/api/temporal/daily/point), which returns one
// scalar per parameter per day for a coordinate. The upstream is treated as
// unreliable: any fetch failure degrades to "no data" and the deterministic
// fallback generator takes over, so scoring never fails.
//
// # Parameter Codes
//
// The closed set of POWER parameter codes this service scores:
//
//	T2M     2-meter air temperature, °C
//	PRECTOT daily precipitation total, mm
//	CLDTT   total cloud cover, %
//	WS2M    2-meter wind speed, m/s
//
// User-facing condition keywords ("rain", "hot", "cloudy", ...) map onto these
// codes through a static synonym table; each code carries a fixed display
// color used by chart-rendering clients.
//
// # Scoring
//
// Each parameter has its own raw-value formula producing a 0-100 probability
// score (see [ScoreParameter]). Rounding is half away from zero for
// precipitation, cloud cover, and wind; temperature truncates toward zero
// after clamping. The asymmetry is intentional and pinned by tests — the
// scores are part of the observable contract.
//
// # Deterministic Generation
//
// When no raw value is available, and for the entire 20-year trend series,
// values come from [SeedNumber]: an MD5 digest over the canonically formatted
// inputs, reduced modulo 101. Identical inputs always produce identical
// output across calls and process restarts, so synthetic trend lines are
// stable for a given coordinate. The exact digest and formatting are fixed;
// changing either would visibly shift every client's charts.
package domain
