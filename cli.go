package main

var cli struct {
	Verbose    bool     `help:"Prints debug output by default"`
	Profile    bool     `help:"Output a pprof profile"`
	SampleRate float64  `help:"Override receiver.sample_rate (Hz)"`
	CenterFreq float64  `help:"Override receiver.center_freq (Hz)"`
	Squelch    *float64 `help:"Override receiver.squelch (dB)"`

	Probe struct {
	} `cmd:"" help:"List the available radios and SoapySDR configuration"`
	Channels struct {
	} `cmd:"" help:"Print the channels covered by the configured sample rate and center frequency"`
	Scan struct {
		File string `help:"Scan a cf32 capture instead of the radio"`
		Tui  bool   `help:"Show live per-channel stats"`
	} `cmd:"" help:"Run the channel scanner"`
	Survey struct {
		File string `help:"cf32 capture to survey" required:""`
	} `cmd:"" help:"Print the mean power of every channel in a capture"`
	Record struct {
		Out     string `help:"Capture file to write" required:""`
		Samples int    `help:"Number of samples to record" default:"4000000"`
	} `cmd:"" help:"Record a cf32 capture from the radio"`
}
