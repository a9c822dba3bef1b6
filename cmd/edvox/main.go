// Edvox — spoken feedback for a modal text editor.
//
// Usage:
//
//	edvox [-verbose] [-quiet] [-file path]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/aymendh/edvox/internal/display"
	"github.com/aymendh/edvox/internal/domain"
	"github.com/aymendh/edvox/internal/editor"
	"github.com/aymendh/edvox/internal/engine"
	"github.com/aymendh/edvox/internal/logger"
	"github.com/aymendh/edvox/internal/speech"
)

// sampleText is opened when no -file is given, so the demo speaks
// something interesting out of the box.
const sampleText = `package main

import "fmt"

func main() {
	count := 0
	for i := 0; i < 10; i++ {
		count += i
	}
	// TODO: print the intermediate sums too
	fmt.Println("total", count)
}
`

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".edvox-logs/edvox.log", "file to write logs to (use \"stderr\" to log to console)")
	noSpeech := flag.Bool("no-speech", false, "disable text-to-speech even if Azure keys are set")
	diskCache := flag.Bool("disk-cache", true, "persist TTS audio cache to disk (reads from disk even when false)")
	cacheDir := flag.String("cache-dir", ".edvox-cache", "directory for persistent TTS audio cache")
	speechRetries := flag.Int("speech-retries", speech.DefaultAwaitAttempts, "attempts to reach the speech service before going silent")
	file := flag.String("file", "", "file to open (read-only source; edits are not written back)")
	flag.Parse()

	// Configure logger.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the editor screen stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Redirect Go's default log package (used by third-party libs) to the
	// same output so it doesn't garble the terminal.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the buffer.
	text := sampleText
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: could not read %s: %v\n", *file, err)
			os.Exit(1)
		}
		text = string(data)
	}
	buf := editor.NewBuffer(text)

	// Build the voice. Azure TTS when credentials are present, otherwise
	// the silent fallback so the editor still runs.
	var voice domain.Voice
	var echo display.KeyEchoer

	noop := speech.NewNoOp(log)
	voice, echo = noop, noop

	azureKey := os.Getenv(speech.EnvAzureSpeechKey)
	azureRegion := os.Getenv(speech.EnvAzureSpeechRegion)

	if azureKey != "" && azureRegion != "" && !*noSpeech {
		player, err := speech.NewPlayer(log)
		if err != nil {
			log.Error("audio player init failed, speech disabled: %v", err)
		} else {
			speaker, err := speech.Await(ctx, *speechRetries, speech.DefaultAwaitDelay,
				func(ctx context.Context) (*speech.Speaker, error) {
					client := speech.NewAzureClient(azureKey, azureRegion, log)
					if _, err := client.Synthesize(ctx, "ready", domain.DefaultProfile()); err != nil {
						return nil, err
					}
					return speech.NewSpeaker(client, player, log,
						speech.WithCacheDir(*cacheDir),
						speech.WithDiskWrite(*diskCache),
					), nil
				})
			if err != nil {
				log.Error("voice service unavailable, speech disabled: %v", err)
			} else {
				speaker.Start(ctx)
				voice, echo = speaker, speaker
				log.Info("TTS enabled (voice=%s, region=%s)", speech.DefaultVoice, azureRegion)
			}
		}
	} else if !*noSpeech {
		log.Info("TTS disabled: set %s and %s env vars to enable", speech.EnvAzureSpeechKey, speech.EnvAzureSpeechRegion)
	}

	// Wire the engine and sync it with the buffer's starting state.
	eng := engine.New(buf, voice, log)
	eng.OnModalStatusChanged()
	eng.OnAnnotationsChanged(editor.Lint(buf.Lines()))

	// Bubble Tea owns the terminal — blocks until quit.
	ui := display.NewUI(buf, eng, echo, log)
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	cancel()
}
