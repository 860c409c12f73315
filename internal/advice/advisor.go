package advice

import (
	"fmt"
	"math"

	"github.com/ngmaloney/jiai-terminal/internal/models"
)

// Sea-state thresholds behind the canned text
const (
	dangerWindMs      = 10.0
	cautionWindMs     = 6.0
	strongTideCm      = 15.0
	moderateTideCm    = 5.0
	swimBladderHPa    = 1005.0
	seasickWaveMetres = 0.5
)

var headlines = map[models.SafetyLevel]string{
	models.SafetyGood:    "【良好】絶好の釣行日和です。集中して時合を待てます。",
	models.SafetyCaution: "【注意】やや風が強く、ドテラ流しでは船足が速くなります。",
	models.SafetyDanger:  "【厳戒】撤退を視野に入れるべき海況です。",
}

var trendText = map[models.TideTrend]string{
	models.TideRising:  "上げ潮（満ちてくる潮）",
	models.TideFalling: "下げ潮（引き潮）",
}

const (
	depthNote         = "潮流の速さに合わせ、ラインの角度を45度に保つ重量を選択してください。"
	lowPressureNote   = "低気圧により魚の浮袋が膨らみ、活性が上がる可能性があります。"
	highPressureNote  = "安定した高気圧下です。"
	roughSeaNote      = "船酔いに注意し、足元の安全を確保してください。"
	calmSeaNote       = "海面は穏やか。キャスティングも容易です。"
	slackTideStrategy = "潮が止まり気味です。リアクションバイトを誘う速い動きを試してください。"
)

// SafetyFor grades the wind speed
func SafetyFor(windMs float64) models.SafetyLevel {
	switch {
	case windMs > dangerWindMs:
		return models.SafetyDanger
	case windMs > cautionWindMs:
		return models.SafetyCaution
	default:
		return models.SafetyGood
	}
}

// StrengthFor grades the absolute tide rate
func StrengthFor(deltaCm float64) models.TideStrength {
	abs := math.Abs(deltaCm)
	switch {
	case abs > strongTideCm:
		return models.TideStrong
	case abs > moderateTideCm:
		return models.TideModerate
	default:
		return models.TideSlack
	}
}

// TrendText returns the display label for a tide direction
func TrendText(trend models.TideTrend) string {
	return trendText[trend]
}

// Advise selects the advice text for a scored sample
func Advise(req models.Request, sample models.EnvironmentalSample, score models.AdviceScore) models.Advice {
	safety := SafetyFor(sample.WindSpeed)
	strength := StrengthFor(score.TideDelta)
	trend := score.Trend()

	a := models.Advice{
		Safety:       safety,
		Headline:     headlines[safety],
		Trend:        trend,
		TrendText:    trendText[trend],
		Strength:     strength,
		TideStrategy: tideStrategy(strength, score.TideDelta, req.Style),
		DepthNote:    depthNote,
		WindNote:     fmt.Sprintf("風速 %.1fm/s。船が風で押されるため、エンジンでの補正が必要な場合があります。", sample.WindSpeed),
		PressureNote: highPressureNote,
		WaveNote:     calmSeaNote,
		Caption:      fmt.Sprintf("※本診断は %s の実況値（POS: %s）に基づき、%sに最適化して生成されました。", req.Location, req.Coordinates(), req.Style),
	}
	if sample.Pressure < swimBladderHPa {
		a.PressureNote = lowPressureNote
	}
	if sample.WaveHeight > seasickWaveMetres {
		a.WaveNote = roughSeaNote
	}
	return a
}

func tideStrategy(strength models.TideStrength, delta float64, style string) string {
	switch strength {
	case models.TideStrong:
		return fmt.Sprintf("潮が非常に効いています（%+.1fcm/h）。重めの仕掛けで確実に底を取ってください。", delta)
	case models.TideModerate:
		return fmt.Sprintf("適度な潮の動きです。%sで最もヒットが期待できるキレ具合です。", style)
	default:
		return slackTideStrategy
	}
}
