package speech

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/aymendh/edvox/internal/domain"
	"github.com/aymendh/edvox/internal/logger"
)

// AzureOption configures the Azure TTS client.
type AzureOption func(*AzureClient)

// WithVoice sets the TTS voice.
func WithVoice(voice string) AzureOption {
	return func(c *AzureClient) {
		c.voice = voice
	}
}

// WithAudioFormat sets the audio output format.
func WithAudioFormat(format string) AzureOption {
	return func(c *AzureClient) {
		c.format = format
	}
}

// WithHTTPTimeout sets the HTTP client timeout for TTS requests.
func WithHTTPTimeout(d time.Duration) AzureOption {
	return func(c *AzureClient) {
		c.httpClient.Timeout = d
	}
}

// AzureClient synthesizes styled text via Azure Cognitive Services.
// Profile parameters are carried into SSML prosody markup.
type AzureClient struct {
	subscriptionKey string
	region          string
	voice           string
	format          string
	httpClient      *http.Client
	log             *logger.Logger
}

// Compile-time interface check.
var _ domain.Synthesizer = (*AzureClient)(nil)

// Voice returns the configured voice name.
func (c *AzureClient) Voice() string { return c.voice }

// NewAzureClient creates an Azure TTS client with the given credentials.
func NewAzureClient(key, region string, log *logger.Logger, opts ...AzureOption) *AzureClient {
	c := &AzureClient{
		subscriptionKey: key,
		region:          region,
		voice:           DefaultVoice,
		format:          DefaultAudioFormat,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Synthesize converts text to speech audio (WAV bytes) styled by the
// given profile.
func (c *AzureClient) Synthesize(ctx context.Context, text string, profile domain.Profile) ([]byte, error) {
	url := fmt.Sprintf("https://%s.tts.speech.microsoft.com/cognitiveservices/v1", c.region)

	ssml := buildSSML(c.voice, text, profile)
	c.log.Debug("azure tts: synthesizing %d chars with voice %s", len(text), c.voice)

	req, err := http.NewRequestWithContext(ctx, "POST", url, strings.NewReader(ssml))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Ocp-Apim-Subscription-Key", c.subscriptionKey)
	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("X-Microsoft-OutputFormat", c.format)
	req.Header.Set("User-Agent", "edvox/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("azure tts error %d: %s", resp.StatusCode, string(body))
	}

	audioData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading audio data: %w", err)
	}

	c.log.Debug("azure tts: got %d bytes of audio", len(audioData))
	return audioData, nil
}

// buildSSML creates SSML markup carrying the profile as prosody
// attributes. Rate/pitch/volume multipliers around 1.0 become signed
// percentages; RelativePitch shifts pitch additively.
func buildSSML(voice, text string, p domain.Profile) string {
	if p.Punctuation == domain.PunctuationNone {
		text = stripPunctuation(text)
	}

	rate := signedPercent(p.Rate)
	pitch := signedPercent(p.Pitch + p.RelativePitch)
	volume := int(p.Volume * 100)

	return fmt.Sprintf(
		`<speak version='1.0' xml:lang='en-US'><voice xml:lang='en-US' name='%s'><prosody rate='%s' pitch='%s' volume='%d'>%s</prosody></voice></speak>`,
		voice, rate, pitch, volume, escapeXML(text),
	)
}

// signedPercent renders a multiplier around 1.0 as "+15%" / "-10%".
func signedPercent(mult float64) string {
	return fmt.Sprintf("%+d%%", int(math.Round((mult-1)*100)))
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	`"`, "&quot;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// stripPunctuation drops punctuation and symbol runes so the voice
// doesn't echo them. Whitespace and word characters pass through.
func stripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return -1
		}
		return r
	}, s)
}
