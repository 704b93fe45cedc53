package config

type ReceiverConf struct {
	SampleRate    float64 `koanf:"sample_rate"`
	CenterFreq    float64 `koanf:"center_freq"`
	Squelch       float64 `koanf:"squelch"`
	SNRThreshold  float64 `koanf:"snr_threshold"`
	SymbolHistory int     `koanf:"symbol_history"`
	Window        string  `koanf:"window"`
}

type ClockRecoveryConf struct {
	Mu         float64 `koanf:"mu"`
	Alpha      float64 `koanf:"alpha"`
	OmegaLimit float64 `koanf:"omega_limit"`
}

type RadioConf struct {
	Driver      string `koanf:"driver"`
	Address     string `koanf:"address"`
	DeviceIndex int    `koanf:"device_index"`
	Gain        int    `koanf:"gain"`
	SampleType  string `koanf:"sample_type"`
	ChunkSize   int    `koanf:"chunk_size"`
}

type ScanConf struct {
	Workers       int  `koanf:"workers"`
	LowEnergy     bool `koanf:"low_energy"`
	SpectrumEvery int  `koanf:"spectrum_every"`
}

type TuiConf struct {
	RefreshMs       int     `koanf:"refresh_ms"`
	SNRWarnPct      float64 `koanf:"snr_warn_pct"`
	SNRCritPct      float64 `koanf:"snr_crit_pct"`
	EnableLogOutput bool    `koanf:"enable_log_output"`
}

type Conf struct {
	Receiver      ReceiverConf      `koanf:"receiver"`
	ClockRecovery ClockRecoveryConf `koanf:"clockrecovery"`
	Radio         RadioConf         `koanf:"radio"`
	Scan          ScanConf          `koanf:"scan"`
	Tui           TuiConf           `koanf:"tui"`
}
