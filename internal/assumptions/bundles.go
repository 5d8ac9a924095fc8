package assumptions

// Compiled-in calibration bundles. These are the engine's only source of
// market assumptions -- there is no dynamic loading path (spec §3.1,
// §4.1). (IN, 2024-Q4) is the bundle required by spec.md's end-to-end
// scenarios; (US, 2024-Q4) is a supplemented second bundle so
// Registry.List/GetLatest have more than one region to exercise.

// Asset ids used across both bundles.
const (
	AssetEquity    = "equity"
	AssetDebt      = "debt"
	AssetGold      = "gold"
	AssetCash      = "cash"
)

func inBundle2024Q4() Bundle {
	return Bundle{
		Region:        "IN",
		Version:       "2024-Q4",
		EffectiveDate: "2024-10-01",
		Assets: map[string]AssetParams{
			AssetEquity: {
				Label:          "Nifty 500 Index",
				Category:       CategoryEquity,
				Nominal:        ReturnDistribution{MeanPct: 12.0, VolPct: 18.0},
				Real:           ReturnDistribution{MeanPct: 6.5, VolPct: 18.0},
				TradingCostBps: 10,
			},
			AssetDebt: {
				Label:          "Government Bond Index",
				Category:       CategoryDebt,
				Nominal:        ReturnDistribution{MeanPct: 7.0, VolPct: 5.0},
				Real:           ReturnDistribution{MeanPct: 1.8, VolPct: 5.0},
				TradingCostBps: 5,
			},
			AssetGold: {
				Label:          "Gold ETF",
				Category:       CategoryCommodity,
				Nominal:        ReturnDistribution{MeanPct: 8.5, VolPct: 15.0},
				Real:           ReturnDistribution{MeanPct: 3.2, VolPct: 15.0},
				TradingCostBps: 20,
			},
			AssetCash: {
				Label:          "Liquid / Money Market",
				Category:       CategoryCash,
				Nominal:        ReturnDistribution{MeanPct: 5.0, VolPct: 1.0},
				Real:           ReturnDistribution{MeanPct: -0.3, VolPct: 1.0},
				TradingCostBps: 1,
			},
		},
		Correlations: map[AssetPair]float64{
			NewAssetPair(AssetEquity, AssetDebt): -0.15,
			NewAssetPair(AssetEquity, AssetGold):  0.05,
			NewAssetPair(AssetEquity, AssetCash):  0.0,
			NewAssetPair(AssetDebt, AssetGold):    0.10,
			NewAssetPair(AssetDebt, AssetCash):    0.20,
			NewAssetPair(AssetGold, AssetCash):    0.0,
		},
		Regimes: []Regime{
			{
				Name:                "normal",
				SteadyStateProb:     0.80,
				AvgDurationYears:    4.0,
				DurationVolYears:    1.5,
				ReturnMultiplierPct: map[string]float64{AssetEquity: 1.0, AssetDebt: 1.0, AssetGold: 1.0, AssetCash: 1.0},
				VolMultiplierPct:    map[string]float64{AssetEquity: 1.0, AssetDebt: 1.0, AssetGold: 1.0, AssetCash: 1.0},
			},
			{
				Name:                "bear",
				SteadyStateProb:     0.15,
				AvgDurationYears:    1.0,
				DurationVolYears:    0.5,
				ReturnMultiplierPct: map[string]float64{AssetEquity: -1.2, AssetDebt: 0.8, AssetGold: 1.3, AssetCash: 1.0},
				VolMultiplierPct:    map[string]float64{AssetEquity: 1.6, AssetDebt: 1.2, AssetGold: 1.3, AssetCash: 1.0},
			},
			{
				Name:                "crisis",
				SteadyStateProb:     0.05,
				AvgDurationYears:    0.5,
				DurationVolYears:    0.3,
				ReturnMultiplierPct: map[string]float64{AssetEquity: -2.5, AssetDebt: 0.5, AssetGold: 1.8, AssetCash: 1.0},
				VolMultiplierPct:    map[string]float64{AssetEquity: 2.5, AssetDebt: 1.8, AssetGold: 1.8, AssetCash: 1.0},
			},
		},
		Inflation: InflationParams{
			MeanPct:     5.5,
			VolPct:      1.5,
			Persistence: 0.6,
			RegimeAdjustments: map[string]float64{
				"bear":   0.5,
				"crisis": 1.5,
			},
		},
	}
}

func usBundle2024Q4() Bundle {
	return Bundle{
		Region:        "US",
		Version:       "2024-Q4",
		EffectiveDate: "2024-10-01",
		Assets: map[string]AssetParams{
			AssetEquity: {
				Label:          "S&P 500 Total Return",
				Category:       CategoryEquity,
				Nominal:        ReturnDistribution{MeanPct: 9.5, VolPct: 15.5},
				Real:           ReturnDistribution{MeanPct: 6.7, VolPct: 15.5},
				TradingCostBps: 3,
			},
			AssetDebt: {
				Label:          "Aggregate Bond Index",
				Category:       CategoryDebt,
				Nominal:        ReturnDistribution{MeanPct: 4.5, VolPct: 4.5},
				Real:           ReturnDistribution{MeanPct: 1.7, VolPct: 4.5},
				TradingCostBps: 2,
			},
			AssetGold: {
				Label:          "Gold ETF",
				Category:       CategoryCommodity,
				Nominal:        ReturnDistribution{MeanPct: 6.0, VolPct: 14.0},
				Real:           ReturnDistribution{MeanPct: 3.2, VolPct: 14.0},
				TradingCostBps: 15,
			},
			AssetCash: {
				Label:          "Money Market",
				Category:       CategoryCash,
				Nominal:        ReturnDistribution{MeanPct: 4.5, VolPct: 0.5},
				Real:           ReturnDistribution{MeanPct: 1.7, VolPct: 0.5},
				TradingCostBps: 1,
			},
		},
		Correlations: map[AssetPair]float64{
			NewAssetPair(AssetEquity, AssetDebt): -0.20,
			NewAssetPair(AssetEquity, AssetGold):  0.02,
			NewAssetPair(AssetEquity, AssetCash):  0.0,
			NewAssetPair(AssetDebt, AssetGold):    0.08,
			NewAssetPair(AssetDebt, AssetCash):    0.15,
			NewAssetPair(AssetGold, AssetCash):    0.0,
		},
		Regimes: []Regime{
			{
				Name:                "normal",
				SteadyStateProb:     0.82,
				AvgDurationYears:    5.0,
				DurationVolYears:    2.0,
				ReturnMultiplierPct: map[string]float64{AssetEquity: 1.0, AssetDebt: 1.0, AssetGold: 1.0, AssetCash: 1.0},
				VolMultiplierPct:    map[string]float64{AssetEquity: 1.0, AssetDebt: 1.0, AssetGold: 1.0, AssetCash: 1.0},
			},
			{
				Name:                "bear",
				SteadyStateProb:     0.13,
				AvgDurationYears:    1.2,
				DurationVolYears:    0.6,
				ReturnMultiplierPct: map[string]float64{AssetEquity: -1.3, AssetDebt: 0.9, AssetGold: 1.2, AssetCash: 1.0},
				VolMultiplierPct:    map[string]float64{AssetEquity: 1.7, AssetDebt: 1.1, AssetGold: 1.2, AssetCash: 1.0},
			},
			{
				Name:                "crisis",
				SteadyStateProb:     0.05,
				AvgDurationYears:    0.5,
				DurationVolYears:    0.3,
				ReturnMultiplierPct: map[string]float64{AssetEquity: -2.2, AssetDebt: 0.6, AssetGold: 1.6, AssetCash: 1.0},
				VolMultiplierPct:    map[string]float64{AssetEquity: 2.3, AssetDebt: 1.6, AssetGold: 1.6, AssetCash: 1.0},
			},
		},
		Inflation: InflationParams{
			MeanPct:     3.0,
			VolPct:      1.2,
			Persistence: 0.55,
			RegimeAdjustments: map[string]float64{
				"bear":   0.3,
				"crisis": 1.0,
			},
		},
	}
}

// Default is the package-level registry, built once from the compiled-in
// bundles above. Callers that need a specific Registry instance for
// testing should construct one with NewRegistry instead.
var Default Registry = MustNewRegistry(inBundle2024Q4(), usBundle2024Q4())
