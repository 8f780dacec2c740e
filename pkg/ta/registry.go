package ta

import (
	"sort"

	"github.com/samber/lo"
)

// indicatorFunc is the uniform shape every registered indicator satisfies
type indicatorFunc func(*Analysis, ...Option) (*Result, error)

// registry maps the canonical lower-case kind of every indicator to its
// function. The set is closed and enumerable; Invoke consults the alias
// table first, then this map.
var registry = map[string]indicatorFunc{
	// momentum
	"ao":    (*Analysis).AO,
	"apo":   (*Analysis).APO,
	"bop":   (*Analysis).BOP,
	"cci":   (*Analysis).CCI,
	"cmo":   (*Analysis).CMO,
	"kst":   (*Analysis).KST,
	"macd":  (*Analysis).MACD,
	"mom":   (*Analysis).MOM,
	"ppo":   (*Analysis).PPO,
	"roc":   (*Analysis).ROC,
	"rsi":   (*Analysis).RSI,
	"stoch": (*Analysis).Stoch,
	"trix":  (*Analysis).TRIX,
	"tsi":   (*Analysis).TSI,
	"uo":    (*Analysis).UO,
	"willr": (*Analysis).WILLR,

	// overlap
	"dema":     (*Analysis).DEMA,
	"ema":      (*Analysis).EMA,
	"hl2":      (*Analysis).HL2,
	"hlc3":     (*Analysis).HLC3,
	"hma":      (*Analysis).HMA,
	"midpoint": (*Analysis).Midpoint,
	"midprice": (*Analysis).Midprice,
	"ohlc4":    (*Analysis).OHLC4,
	"rma":      (*Analysis).RMA,
	"rpn":      (*Analysis).RPN,
	"sma":      (*Analysis).SMA,
	"tema":     (*Analysis).TEMA,
	"vwap":     (*Analysis).VWAP,
	"vwma":     (*Analysis).VWMA,
	"wma":      (*Analysis).WMA,

	// performance
	"log_return":     (*Analysis).LogReturn,
	"percent_return": (*Analysis).PercentReturn,

	// statistics
	"kurtosis": (*Analysis).Kurtosis,
	"mad":      (*Analysis).MAD,
	"median":   (*Analysis).Median,
	"quantile": (*Analysis).Quantile,
	"skew":     (*Analysis).Skew,
	"stdev":    (*Analysis).Stdev,
	"variance": (*Analysis).Variance,
	"zscore":   (*Analysis).ZScore,

	// trend
	"adx":        (*Analysis).ADX,
	"aroon":      (*Analysis).Aroon,
	"decreasing": (*Analysis).Decreasing,
	"dpo":        (*Analysis).DPO,
	"increasing": (*Analysis).Increasing,
	"qstick":     (*Analysis).QStick,
	"vortex":     (*Analysis).Vortex,

	// volatility
	"accbands":   (*Analysis).AccBands,
	"atr":        (*Analysis).ATR,
	"bbands":     (*Analysis).BBands,
	"donchian":   (*Analysis).Donchian,
	"kc":         (*Analysis).KC,
	"massi":      (*Analysis).MassIndex,
	"natr":       (*Analysis).NATR,
	"true_range": (*Analysis).TrueRange,

	// volume
	"ad":   (*Analysis).AD,
	"cmf":  (*Analysis).CMF,
	"efi":  (*Analysis).EFI,
	"eom":  (*Analysis).EOM,
	"mfi":  (*Analysis).MFI,
	"nvi":  (*Analysis).NVI,
	"obv":  (*Analysis).OBV,
	"pvol": (*Analysis).PVol,
	"pvt":  (*Analysis).PVT,
}

// aliases maps documented long-form names to canonical kinds. Lookups are
// lower-cased before consulting this table.
var aliases = map[string]string{
	"absolutepriceoscillator":             "apo",
	"accumdist":                           "ad",
	"accumulationdistribution":            "ad",
	"averagedirectionalindex":             "adx",
	"averagetruerange":                    "atr",
	"awesomeoscillator":                   "ao",
	"balanceofpower":                      "bop",
	"bollingerbands":                      "bbands",
	"chaikinmoneyflow":                    "cmf",
	"chandemomentumoscillator":            "cmo",
	"commoditychannelindex":               "cci",
	"detrendpriceoscillator":              "dpo",
	"donchianchannels":                    "donchian",
	"easeofmovement":                      "eom",
	"elderforceindex":                     "efi",
	"exponentialmovingaverage":            "ema",
	"hullmovingaverage":                   "hma",
	"keltnerchannels":                     "kc",
	"knowsurething":                       "kst",
	"logreturn":                           "log_return",
	"massindex":                           "massi",
	"momentum":                            "mom",
	"moneyflowindex":                      "mfi",
	"movingaverageconvergencedivergence":  "macd",
	"negativevolumeindex":                 "nvi",
	"onbalancevolume":                     "obv",
	"pctreturn":                           "percent_return",
	"percentagepriceoscillator":           "ppo",
	"percentreturn":                       "percent_return",
	"pricevolume":                         "pvol",
	"pricevolumetrend":                    "pvt",
	"rangepercentage":                     "rpn",
	"rateofchange":                        "roc",
	"relativestrengthindex":               "rsi",
	"simplemovingaverage":                 "sma",
	"stochastic":                          "stoch",
	"truerange":                           "true_range",
	"truestrengthindex":                   "tsi",
	"ultimateoscillator":                  "uo",
	"volumeweightedaverageprice":          "vwap",
	"volumeweightedmovingaverage":         "vwma",
	"weightedmovingaverage":               "wma",
	"wildermovingaverage":                 "rma",
	"williamsr":                           "willr",
	"vortexindicator":                     "vortex",
}

// Indicators returns the sorted canonical kinds of the registry
func Indicators() []string {
	keys := lo.Keys(registry)
	sort.Strings(keys)
	return keys
}

// Aliases returns the sorted alias names accepted by Invoke
func Aliases() []string {
	keys := lo.Keys(aliases)
	sort.Strings(keys)
	return keys
}
