package settings

var Version = "0.1"

// Rule-table file loaded at startup and on each reset
var ProgramFile = "program.csv"

// Render the stream to a wav-file instead of playing live
var OutputWav = ""

// Number of seconds to render when writing a wav-file
var RenderSeconds = 10.0

// Tape length (cells). Set at startup/reset only.
var TapeLength = 1024

// Current samplerate. The machine steps once per sample.
var SampleRate = 22000

// Target framerate for the visualizer
var FPS = 60

// Initial R/W delay in samples
var DelaySamples = 0

// Delay bounds and key step sizes (samples)
var MinDelay = 0
var MaxDelay = 22000 // ~1 second at the default samplerate
var CoarseDelayStep = 64
var FineDelayStep = 1

// Visuals only. No effect on the audio path.
var Brightness = 6
var MaxBrightness = 255
var DecayRate = 2
var MaxDecayRate = 50

// Seed a single 1 at N/4 on reset. An all-zero tape can stay
// silent forever with some rule tables.
var SeedTape = true

// Print a rule listing after loading
var PrintRules = false

// Run without the termui visualizer (plain console + keyboard)
var Headless = false

// Speaker buffer length in milliseconds
var BufferMs = 60
