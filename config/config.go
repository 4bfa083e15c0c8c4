package config

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Config contains window and timing settings
type Config struct {
	Width  int
	Height int
	TPS    int // ebiten ticks per second, the render-frame cadence
}

// VehicleConfig contains every tunable of the vehicle motion model.
// It is read once when a vehicle is built and never mutated afterwards.
type VehicleConfig struct {
	// Acceleration
	ForwardAcceleration    float64 `json:"forwardAcceleration" mapstructure:"forwardAcceleration"`
	ReverseAcceleration    float64 `json:"reverseAcceleration" mapstructure:"reverseAcceleration"`
	AccelerationMultiplier float64 `json:"accelerationMultiplier" mapstructure:"accelerationMultiplier"`
	MaxSpeed               float64 `json:"maxSpeed" mapstructure:"maxSpeed"`

	// Turning (degrees per second at full input)
	TurnStrengthGrounded float64 `json:"turnStrengthGrounded" mapstructure:"turnStrengthGrounded"`
	TurnStrengthAirborne float64 `json:"turnStrengthAirborne" mapstructure:"turnStrengthAirborne"`
	TurnZAxisScale       float64 `json:"turnZAxisScale" mapstructure:"turnZAxisScale"` // 0..1, roll coupled to airborne yaw

	// Gravity, applied on top of the body's own gravity while airborne
	GravityForce      float64 `json:"gravityForce" mapstructure:"gravityForce"`
	GravityMultiplier float64 `json:"gravityMultiplier" mapstructure:"gravityMultiplier"`

	// Drag
	GroundDrag float64 `json:"groundDrag" mapstructure:"groundDrag"`
	AirDrag    float64 `json:"airDrag" mapstructure:"airDrag"` // keep low or the car stalls when leaving the ground

	// Slope alignment (degrees per second)
	SlopeAlignSpeed float64 `json:"slopeAlignSpeed" mapstructure:"slopeAlignSpeed"`

	// Jump
	JumpForce       float64 `json:"jumpForce" mapstructure:"jumpForce"`
	JumpMultiplier  float64 `json:"jumpMultiplier" mapstructure:"jumpMultiplier"`
	JumpForwardness float64 `json:"jumpForwardness" mapstructure:"jumpForwardness"` // 0..1

	// Ground probe
	GroundProbeLength float64    `json:"groundProbeLength" mapstructure:"groundProbeLength"`
	GroundProbeOffset mgl64.Vec3 `json:"groundProbeOffset" mapstructure:"groundProbeOffset"` // vehicle-local ray origin
	GroundLayers      []string   `json:"groundLayers" mapstructure:"groundLayers"`
}

// BodyConfig contains the reference rigid body settings
type BodyConfig struct {
	Mass        float64
	Radius      float64 // collision sphere radius in metres
	BaseGravity float64 // gravity the body applies on its own, before any vehicle force
}

// SimConfig contains the simulation driver settings
type SimConfig struct {
	FixedStep float64 // seconds per physics step
	MaxSteps  int     // fixed steps allowed per frame before the accumulator is dropped
}

// TrackConfig contains terrain conversion settings
type TrackConfig struct {
	Path           string  // TMX file inside the assets filesystem
	PixelsPerMetre float64 // TMX pixels per world metre
	CellSize       int     // resolv cell size in pixels
	FallLimit      float64 // metres below the track bottom before the car respawns
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	Zoom                    float64 // screen pixels per world metre
	FollowSmoothing         float64 // How fast camera follows the vehicle (0.0-1.0)
	LookAheadDistance       float64 // Max horizontal look-ahead offset in metres
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum speed to update look-ahead
}

// HUDConfig contains speedometer and overlay settings
type HUDConfig struct {
	SpeedConversion float64 // metres per second to display units, 4 makes one unit 900 m/h
	SpeedUnit       string
	Margin          float64
	FontSize        float64
	TextColor       color.RGBA
	PanelColor      color.RGBA
}

// AestheticsConfig contains the purely visual wheel and dust settings
type AestheticsConfig struct {
	MaxWheelsTurnAngle float64 // degrees
	WheelsTurnSpeed    float64 // degrees per second
	DustMaxEmission    float64 // particles per second
	DustFadeSeconds    float32
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowProbe bool // draw the ground probe ray and hit normal
}

// Global configuration instances
var C *Config
var Vehicle VehicleConfig
var Body BodyConfig
var Sim SimConfig
var Track TrackConfig
var Camera CameraConfig
var HUD HUDConfig
var Aesthetics AestheticsConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Ground       = color.RGBA{R: 90, G: 70, B: 50, A: 255}
	Sky          = color.RGBA{R: 30, G: 40, B: 60, A: 255}
)

// DefaultVehicle returns the stock tuning of the car.
func DefaultVehicle() VehicleConfig {
	return VehicleConfig{
		ForwardAcceleration:    8,
		ReverseAcceleration:    4,
		AccelerationMultiplier: 1000,
		MaxSpeed:               25,

		TurnStrengthGrounded: 150,
		TurnStrengthAirborne: 100,
		TurnZAxisScale:       0.5,

		GravityForce:      10,
		GravityMultiplier: 100,

		GroundDrag: 3,
		AirDrag:    0.1,

		SlopeAlignSpeed: 180,

		JumpForce:       35,
		JumpMultiplier:  1000,
		JumpForwardness: 0.5,

		GroundProbeLength: 0.5,
		GroundProbeOffset: mgl64.Vec3{0, -0.4, 0},
		GroundLayers:      []string{"solid", "ramp"},
	}
}

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Vehicle = DefaultVehicle()

	// Heavy enough that 8000 N of drive against ground drag settles near max speed
	Body = BodyConfig{
		Mass:        100,
		Radius:      0.5,
		BaseGravity: 9.81,
	}

	Sim = SimConfig{
		FixedStep: 0.02, // 50 Hz
		MaxSteps:  8,
	}

	Track = TrackConfig{
		Path:           "tracks/hills.tmx",
		PixelsPerMetre: 16,
		CellSize:       16,
		FallLimit:      10,
	}

	Camera = CameraConfig{
		Zoom:                    16,
		FollowSmoothing:         0.1,
		LookAheadDistance:       6.0,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 0.5,
	}

	HUD = HUDConfig{
		SpeedConversion: 4,
		SpeedUnit:       "bph",
		Margin:          10,
		FontSize:        14,
		TextColor:       White,
		PanelColor:      BlackOverlay,
	}

	Aesthetics = AestheticsConfig{
		MaxWheelsTurnAngle: 40,
		WheelsTurnSpeed:    250,
		DustMaxEmission:    25,
		DustFadeSeconds:    0.25,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowProbe: false,
	}
}
