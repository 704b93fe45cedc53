package radio

// #cgo CFLAGS: -g -Wall
// #cgo LDFLAGS: -lSoapySDR
import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jrwynneiii/bluetuner/config"

	"github.com/pothosware/go-soapy-sdr/pkg/device"
	"github.com/pothosware/go-soapy-sdr/pkg/modules"
	"github.com/pothosware/go-soapy-sdr/pkg/sdrlogger"
	"github.com/pothosware/go-soapy-sdr/pkg/version"
)

// Source delivers consecutive complex samples. Read blocks until at least
// one sample is available and returns io.EOF once the stream ends.
type Source interface {
	Read(buf []complex64) (int, error)
}

// Radio streams CF32 samples from a SoapySDR device.
type Radio struct {
	Driver      string
	Address     string
	DeviceIndex int
	Gain        int
	SampleRate  float64
	Frequency   float64
	buffers     [][]complex64
	chunksize   int
	args        map[string]string
	device      *device.SDRDevice
	stream      *device.SDRStreamCF32
}

func InitSoapySDR() {
	log.Debugf("Using SoapySDR versions: ABI: %s API: %s Lib: %s", version.GetABIVersion(), version.GetAPIVersion(), version.GetLibVersion())
	log.Debugf("SoapySDR modules root path: %v", modules.GetRootPath())

	for i, searchPath := range modules.ListSearchPaths() {
		log.Debugf("Search path #%d: %v", i, searchPath)
	}
	for _, module := range modules.ListModules() {
		moduleVersion := modules.GetModuleVersion(module)
		if len(moduleVersion) == 0 {
			moduleVersion = "[None]"
		}
		log.Debugf("Found SoapySDR module: %v, version: %v", module, moduleVersion)
	}
	sdrlogger.SetLogLevel(sdrlogger.Error)
}

func LogAllSoapySDRDevices() error {
	log.Infof("Using SoapySDR versions: ABI: %s API: %s Lib: %s", version.GetABIVersion(), version.GetAPIVersion(), version.GetLibVersion())
	log.Infof("SoapySDR modules root path: %v", modules.GetRootPath())

	modulesFound := modules.ListModules()
	if len(modulesFound) == 0 {
		log.Info("No SoapySDR modules found")
	}
	for _, module := range modulesFound {
		moduleVersion := modules.GetModuleVersion(module)
		if len(moduleVersion) == 0 {
			moduleVersion = "[None]"
		}
		log.Infof("Found SoapySDR module: %v, version: %v", module, moduleVersion)
	}

	// Tune down the logger for soapy so that it doesn't yell about rtl-tcp
	sdrlogger.SetLogLevel(sdrlogger.Error)

	devices := device.Enumerate(nil)
	log.Infof("Found %d devices", len(devices))
	args := make([]map[string]string, len(devices))
	for idx, dev := range devices {
		args[idx] = map[string]string{"driver": dev["driver"]}
	}
	devs, err := device.MakeList(args)
	if err != nil {
		return fmt.Errorf("SoapySDR could not open devices: %w", err)
	}
	for idx, dev := range devs {
		log.Infof("Driver: %s", args[idx]["driver"])
		LogAvailSettings(dev)
	}
	// UnmakeList double frees in the cgo bindings, the OS closes the devices
	return nil
}

func LogAvailSettings(dev *device.SDRDevice) {
	log.Infof("Current settings:")
	for _, setting := range dev.GetSettingInfo() {
		log.Infof("\t- %s: %v", setting.Key, setting.Value)
	}

	numChannels := dev.GetNumChannels(device.DirectionRX)
	log.Info("Channel info:")
	for channel := uint(0); channel < numChannels; channel++ {
		log.Infof("Channel %d:", channel)
		log.Infof("\tAvailable sample rates:")
		log.Infof("\t\t- %v", dev.GetSampleRate(device.DirectionRX, channel))
		for _, sampleRateRange := range dev.GetSampleRateRange(device.DirectionRX, channel) {
			log.Infof("\t\t- %v", sampleRateRange.ToString())
		}
		log.Infof("\tIQ Sample Types: %v", dev.GetStreamFormats(device.DirectionRX, channel))
	}
}

func New(conf config.RadioConf, sampleRate, frequency float64) (*Radio, error) {
	if conf.SampleType != "complex64" {
		return nil, fmt.Errorf("unsupported sample_type %q for radio %s, supported sample types are: [complex64]", conf.SampleType, conf.Driver)
	}
	log.Debug("Initing SoapySDR")
	InitSoapySDR()

	r := Radio{
		Driver:      conf.Driver,
		Address:     conf.Address,
		DeviceIndex: conf.DeviceIndex,
		Gain:        conf.Gain,
		SampleRate:  sampleRate,
		Frequency:   frequency,
		chunksize:   conf.ChunkSize,
		buffers:     [][]complex64{make([]complex64, conf.ChunkSize)},
	}
	return &r, nil
}

// deviceArgs picks the index'th of the enumerated devices for driver. rtl_tcp
// servers are not enumerated and are addressed directly.
func deviceArgs(driver, address string, index int, found []map[string]string) (map[string]string, error) {
	if driver == "rtltcp" {
		return map[string]string{"driver": driver, "rtltcp": address}, nil
	}
	if index < 0 || index >= len(found) {
		return nil, fmt.Errorf("device_index %d out of range, found %d %s devices", index, len(found), driver)
	}
	args := make(map[string]string, len(found[index])+1)
	for k, v := range found[index] {
		args[k] = v
	}
	args["driver"] = driver
	return args, nil
}

// Connect opens the device, tunes it and activates the RX stream. A gain of
// 0 leaves the device on automatic gain.
func (r *Radio) Connect() error {
	var err error
	if r.device == nil {
		var found []map[string]string
		if r.Driver != "rtltcp" {
			found = device.Enumerate(map[string]string{"driver": r.Driver})
		}
		if r.args, err = deviceArgs(r.Driver, r.Address, r.DeviceIndex, found); err != nil {
			return err
		}
		log.Debugf("[radio] Using device %v", r.args)
		if r.device, err = device.Make(r.args); err != nil {
			return fmt.Errorf("could not create SoapySDR device: %w", err)
		}
	}

	log.Debugf("[radio] Setting sample rate to %f", r.SampleRate)
	if err := r.device.SetSampleRate(device.DirectionRX, 0, r.SampleRate); err != nil {
		return fmt.Errorf("could not set sample rate: %w", err)
	}

	if r.Gain > 0 {
		log.Debugf("[radio] Setting gain to %d dB", r.Gain)
		if err := r.device.SetGainMode(device.DirectionRX, 0, false); err != nil {
			return fmt.Errorf("could not disable automatic gain: %w", err)
		}
		if err := r.device.SetGain(device.DirectionRX, 0, float64(r.Gain)); err != nil {
			return fmt.Errorf("could not set gain: %w", err)
		}
	} else {
		log.Debug("[radio] Using automatic gain")
		if err := r.device.SetGainMode(device.DirectionRX, 0, true); err != nil {
			log.Warnf("[radio] Could not enable automatic gain: %v", err)
		}
	}

	log.Debugf("[radio] Setting frequency to %f", r.Frequency)
	if err := r.device.SetFrequency(device.DirectionRX, 0, r.Frequency, nil); err != nil {
		return fmt.Errorf("could not set frequency: %w", err)
	}

	log.Debugf("[radio] Initialized device: %v", r.Driver)
	if r.Driver != "rtltcp" {
		LogAvailSettings(r.device)
	}

	log.Debug("[radio] Creating the IQ stream")
	if r.stream, err = r.device.SetupSDRStreamCF32(device.DirectionRX, []uint{0}, nil); err != nil {
		return fmt.Errorf("could not setup SDR stream: %w", err)
	}

	log.Debug("[radio] Activating IQ stream")
	if err := r.stream.Activate(0, 0, 0); err != nil {
		return fmt.Errorf("could not activate the IQ stream: %w", err)
	}

	// Read the first few samples and discard to make sure we have clean data
	discard := make([]complex64, 1024)
	_, err = r.Read(discard)
	return err
}

func (r *Radio) Read(buf []complex64) (int, error) {
	if r.stream == nil {
		return 0, fmt.Errorf("radio %s is not connected", r.Driver)
	}
	num := min(len(buf), r.chunksize)
	flags := make([]int, 1)
	timeout := uint(100000) //usec

	timeNs, numSamples, err := r.stream.Read(r.buffers, uint(num), flags, timeout)
	log.Debugf("[radio] timeNs: %v, numSamples: %v, err: %v", timeNs, numSamples, err)
	if err != nil {
		return 0, fmt.Errorf("stream read failed: %w", err)
	}
	return copy(buf, r.buffers[0][:numSamples]), nil
}

func (r *Radio) Close() error {
	if r.stream == nil {
		return nil
	}
	log.Debug("[radio] Deactivating IQ stream...")
	if err := r.stream.Deactivate(0, 0); err != nil {
		return fmt.Errorf("could not deactivate the IQ stream: %w", err)
	}
	log.Debug("[radio] Closing IQ stream...")
	if err := r.stream.Close(); err != nil {
		return fmt.Errorf("could not close the IQ stream: %w", err)
	}
	r.stream = nil
	return nil
}
