package main

import (
	"context"
	"errors"
	"io"
	"math"
	"os"
	"os/signal"
	"runtime/pprof"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/jrwynneiii/bluetuner/channel"
	"github.com/jrwynneiii/bluetuner/config"
	"github.com/jrwynneiii/bluetuner/demod"
	"github.com/jrwynneiii/bluetuner/radio"
	"github.com/jrwynneiii/bluetuner/scan"
	"github.com/jrwynneiii/bluetuner/spectrum"
	"github.com/jrwynneiii/bluetuner/tui"
)

type sampleSource interface {
	radio.Source
	io.Closer
}

func main() {
	flags := kong.Parse(&cli)
	if cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	log.Info("Starting bluetuner")

	if cli.Profile {
		prof, err := os.Create("./cpu.pprof")
		if err != nil {
			panic(err)
		}
		pprof.StartCPUProfile(prof)
		defer pprof.StopCPUProfile()
	}

	conf, err := config.Unmarshal(config.Load(config.FindConfigPath(config.SearchPaths)))
	if err != nil {
		log.Fatalf("%v", err)
	}
	applyOverrides(&conf)

	switch flags.Command() {
	case "probe":
		if err := radio.LogAllSoapySDRDevices(); err != nil {
			log.Fatalf("%v", err)
		}
	case "channels":
		printChannels(conf.Receiver)
	case "scan":
		if err := runScan(conf); err != nil {
			log.Fatalf("Scan failed: %v", err)
		}
	case "survey":
		if err := runSurvey(conf, cli.Survey.File); err != nil {
			log.Fatalf("Survey failed: %v", err)
		}
	case "record":
		if err := runRecord(conf); err != nil {
			log.Fatalf("Recording failed: %v", err)
		}
	default:
		log.Info("Command not recognized")
	}
}

func applyOverrides(conf *config.Conf) {
	if cli.SampleRate != 0 {
		conf.Receiver.SampleRate = cli.SampleRate
	}
	if cli.CenterFreq != 0 {
		conf.Receiver.CenterFreq = cli.CenterFreq
	}
	if cli.Squelch != nil {
		conf.Receiver.Squelch = *cli.Squelch
	}
}

func printChannels(conf config.ReceiverConf) {
	r := channel.Select(conf.CenterFreq, conf.SampleRate)
	if r.Empty() {
		log.Warnf("No channel fits inside %.0f Hz around %.0f Hz", conf.SampleRate, conf.CenterFreq)
		return
	}
	log.Infof("Channels %d-%d (%.0f-%.0f MHz)", r.Low, r.High, r.LowFreq()/1e6, r.HighFreq()/1e6)
	for _, ch := range r.Channels() {
		abs := channel.AbsFreq(ch)
		if lech, ok := channel.LEChannel(abs); ok {
			log.Infof("\t%2d: %.0f MHz (%+.1f MHz) LE %d", ch, abs/1e6, channel.RelFreq(ch, conf.CenterFreq)/1e6, lech)
			continue
		}
		log.Infof("\t%2d: %.0f MHz (%+.1f MHz)", ch, abs/1e6, channel.RelFreq(ch, conf.CenterFreq)/1e6)
	}
}

// openSource opens the capture at path, or the configured radio when path
// is empty. Capture metadata takes precedence over the receiver config.
func openSource(conf *config.Conf, path string) (sampleSource, error) {
	if path != "" {
		src, err := radio.OpenFile(path)
		if err != nil {
			return nil, err
		}
		if src.Meta.SampleRate != 0 {
			conf.Receiver.SampleRate = src.Meta.SampleRate
		}
		if src.Meta.CenterFreq != 0 {
			conf.Receiver.CenterFreq = src.Meta.CenterFreq
		}
		log.Infof("Reading %s at %.0f Hz around %.0f Hz", path, conf.Receiver.SampleRate, conf.Receiver.CenterFreq)
		return src, nil
	}

	r, err := radio.New(conf.Radio, conf.Receiver.SampleRate, conf.Receiver.CenterFreq)
	if err != nil {
		return nil, err
	}
	if err := r.Connect(); err != nil {
		return nil, err
	}
	return r, nil
}

func runScan(conf config.Conf) error {
	src, err := openSource(&conf, cli.Scan.File)
	if err != nil {
		return err
	}
	defer src.Close()

	rx, err := demod.New(conf.Receiver, conf.ClockRecovery)
	if err != nil {
		return err
	}
	feeder := radio.NewFeeder(src, rx.RequiredHistory(), conf.Radio.ChunkSize)
	scanner := scan.New(rx, conf.Scan, scan.LogSink{})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if !cli.Scan.Tui {
		err = scanner.Run(ctx, feeder)
		logSummary(scanner.Snapshot())
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	result := make(chan error, 1)
	go func() {
		result <- scanner.Run(ctx, feeder)
	}()
	uiErr := tui.StartUI(scanner, conf.Tui)
	stop()
	err = <-result
	log.SetOutput(os.Stderr)
	logSummary(scanner.Snapshot())
	if uiErr != nil {
		return uiErr
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func logSummary(sum scan.Summary) {
	log.Infof("Scanned %d blocks, %d squelched, %d bursts", sum.Blocks, sum.SquelchedBlocks, sum.Bursts)
	for _, st := range sum.Channels {
		if st.Bursts == 0 && st.LowSNR == 0 {
			continue
		}
		log.Infof("\tchannel %2d: %d bursts, %d symbols, %d low SNR, last SNR %.1f dB",
			st.Channel, st.Bursts, st.Symbols, st.LowSNR, st.LastSNR)
	}
}

func runSurvey(conf config.Conf, path string) error {
	src, err := openSource(&conf, path)
	if err != nil {
		return err
	}
	defer src.Close()

	r := channel.Select(conf.Receiver.CenterFreq, conf.Receiver.SampleRate)
	if r.Empty() {
		return demod.ErrNoChannels
	}
	analyzer := spectrum.NewAnalyzer(spectrum.DefaultSize, conf.Receiver.SampleRate, conf.Receiver.CenterFreq, r)
	feeder := radio.NewFeeder(src, 0, analyzer.Size()*16)

	totals := make([]float64, r.Len())
	var blocks int
	for {
		block, err := feeder.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		powers := analyzer.Survey(block)
		if powers == nil {
			continue
		}
		for i, p := range powers {
			totals[i] += math.Pow(10, p.PowerDB/10)
		}
		blocks++
	}
	if blocks == 0 {
		return errors.New("capture is shorter than one FFT frame")
	}

	for i, ch := range r.Channels() {
		log.Infof("\tchannel %2d: %.0f MHz %7.1f dB", ch, channel.AbsFreq(ch)/1e6, 10*math.Log10(totals[i]/float64(blocks)))
	}
	return nil
}

func runRecord(conf config.Conf) error {
	src, err := openSource(&conf, "")
	if err != nil {
		return err
	}
	defer src.Close()

	samples := make([]complex64, cli.Record.Samples)
	for filled := 0; filled < len(samples); {
		n, err := src.Read(samples[filled:])
		if err != nil {
			return err
		}
		filled += n
	}

	meta := radio.CaptureMeta{
		SampleRate: conf.Receiver.SampleRate,
		CenterFreq: conf.Receiver.CenterFreq,
		Driver:     conf.Radio.Driver,
	}
	if err := radio.WriteCapture(cli.Record.Out, meta, samples); err != nil {
		return err
	}
	log.Infof("Wrote %d samples to %s", len(samples), cli.Record.Out)
	return nil
}
