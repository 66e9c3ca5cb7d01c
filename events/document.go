package events

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/animevent/config"
	"github.com/automoto/animevent/shared/gamemath"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for authoring documents.
var (
	ErrUnknownKind   = errors.New("unknown event kind")
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownEnum   = errors.New("unknown enumerated value")
	ErrInvalidWindow = errors.New("invalid event window")
	ErrInvalidVector = errors.New("vector must have three components")
)

// Document is the authored form: character -> clip -> ordered event records.
type Document map[string]map[string][]Record

// Record is one decoded event record.
type Record struct {
	Event Event
}

type recordHeader struct {
	Type string `yaml:"type"`
}

type vec3 []float64

func (v vec3) value() (gamemath.Vec3, error) {
	switch len(v) {
	case 0:
		return gamemath.Vec3{}, nil
	case 3:
		return gamemath.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
	}
	return gamemath.Vec3{}, fmt.Errorf("%w: got %d", ErrInvalidVector, len(v))
}

type rawMovement struct {
	Window               `yaml:",inline"`
	Mode                 string `yaml:"mode"`
	UseStickInput        bool   `yaml:"useStickInput"`
	StopOnProximity      bool   `yaml:"stopOnProximity"`
	MoveTowardEnemy      bool   `yaml:"moveTowardEnemy"`
	RotateTowardMovement bool   `yaml:"rotateTowardMovement"`
	Velocity             vec3   `yaml:"velocity"`
	Target               vec3   `yaml:"target"`
	Easing               string `yaml:"easing"`
}

type rawRotation struct {
	Window     `yaml:",inline"`
	Axis       vec3    `yaml:"axis"`
	TotalAngle float64 `yaml:"totalAngle"`
	Easing     string  `yaml:"easing"`
}

type rawAttack struct {
	Window      `yaml:",inline"`
	MaxHitCount int     `yaml:"maxHitCount"`
	HitInterval float64 `yaml:"hitInterval"`
	Damage      float64 `yaml:"damage"`
	Hitbox      struct {
		Offset vec3 `yaml:"offset"`
		Size   vec3 `yaml:"size"`
	} `yaml:"hitbox"`
	Knockback struct {
		Velocity     vec3    `yaml:"velocity"`
		Acceleration vec3    `yaml:"acceleration"`
		Duration     float64 `yaml:"duration"`
		Reaction     string  `yaml:"reaction"`
	} `yaml:"knockback"`
}

type rawEffect struct {
	Window               `yaml:",inline"`
	HitStopDuration      float64 `yaml:"hitStopDuration"`
	CameraShakeDuration  float64 `yaml:"cameraShakeDuration"`
	CameraShakeIntensity float64 `yaml:"cameraShakeIntensity"`
	SoundID              string  `yaml:"soundId"`
	ParticleID           string  `yaml:"particleId"`
	PostEffect           string  `yaml:"postEffect"`
	Trigger              string  `yaml:"trigger"`
}

type rawCamera struct {
	Window          `yaml:",inline"`
	CameraClip      string  `yaml:"cameraClip"`
	PlaybackSpeed   float64 `yaml:"playbackSpeed"`
	SyncToCharacter bool    `yaml:"syncToCharacter"`
	Trigger         string  `yaml:"trigger"`
}

type rawQTE struct {
	Window       `yaml:",inline"`
	Action       string  `yaml:"action"`
	RequiredTime float64 `yaml:"requiredTime"`
	TimeScale    float64 `yaml:"timeScale"`
	Trigger      string  `yaml:"trigger"`
}

type rawAction struct {
	Window `yaml:",inline"`
	Action string `yaml:"action"`
}

// UnmarshalYAML decodes a record by its type discriminator.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	var h recordHeader
	if err := node.Decode(&h); err != nil {
		return err
	}
	kind, ok := ParseKind(h.Type)
	if !ok {
		return fmt.Errorf("line %d: %w %q", node.Line, ErrUnknownKind, h.Type)
	}
	ev, err := decodeEvent(kind, node)
	if err != nil {
		return fmt.Errorf("line %d: %s: %w", node.Line, kind, err)
	}
	if w := ev.Span(); w.End < w.Start {
		return fmt.Errorf("line %d: %s: %w: end %v before start %v", node.Line, kind, ErrInvalidWindow, w.End, w.Start)
	}
	r.Event = ev
	return nil
}

func decodeEvent(kind Kind, node *yaml.Node) (Event, error) {
	switch kind {
	case KindMovement:
		var raw rawMovement
		if err := node.Decode(&raw); err != nil {
			return nil, err
		}
		return raw.event()
	case KindRotation:
		var raw rawRotation
		if err := node.Decode(&raw); err != nil {
			return nil, err
		}
		return raw.event()
	case KindAttack:
		var raw rawAttack
		if err := node.Decode(&raw); err != nil {
			return nil, err
		}
		return raw.event()
	case KindEffect:
		var raw rawEffect
		if err := node.Decode(&raw); err != nil {
			return nil, err
		}
		return raw.event()
	case KindCameraAnimation:
		var raw rawCamera
		if err := node.Decode(&raw); err != nil {
			return nil, err
		}
		return raw.event()
	case KindQTE:
		var raw rawQTE
		if err := node.Decode(&raw); err != nil {
			return nil, err
		}
		return raw.event()
	case KindCancel, KindBufferedAction:
		var raw rawAction
		if err := node.Decode(&raw); err != nil {
			return nil, err
		}
		action, err := parseAction(raw.Action)
		if err != nil {
			return nil, err
		}
		if kind == KindCancel {
			return &CancelEvent{Window: raw.Window, Action: action}, nil
		}
		return &BufferedActionEvent{Window: raw.Window, Action: action}, nil
	}
	return nil, ErrUnknownKind
}

// lookup resolves an enumerated string; empty selects fallback.
func lookup[T any](names map[string]T, s string, fallback T) (T, error) {
	if s == "" {
		return fallback, nil
	}
	v, ok := names[s]
	if !ok {
		return fallback, fmt.Errorf("%w %q", ErrUnknownEnum, s)
	}
	return v, nil
}

func parseAction(s string) (config.ActionID, error) {
	if s == "" {
		return config.ActionNone, nil
	}
	a, ok := config.ParseAction(s)
	if !ok {
		return config.ActionNone, fmt.Errorf("%w %q", ErrUnknownAction, s)
	}
	return a, nil
}

func (raw rawMovement) event() (Event, error) {
	mode, err := lookup(movementModeNames, raw.Mode, MoveVelocity)
	if err != nil {
		return nil, err
	}
	easing, err := lookup(easingNames, raw.Easing, EaseLinear)
	if err != nil {
		return nil, err
	}
	vel, err := raw.Velocity.value()
	if err != nil {
		return nil, err
	}
	target, err := raw.Target.value()
	if err != nil {
		return nil, err
	}
	return &MovementEvent{
		Window:               raw.Window,
		Mode:                 mode,
		UseStickInput:        raw.UseStickInput,
		StopOnProximity:      raw.StopOnProximity,
		MoveTowardEnemy:      raw.MoveTowardEnemy,
		RotateTowardMovement: raw.RotateTowardMovement,
		Velocity:             vel,
		Target:               target,
		Easing:               easing,
	}, nil
}

func (raw rawRotation) event() (Event, error) {
	easing, err := lookup(easingNames, raw.Easing, EaseLinear)
	if err != nil {
		return nil, err
	}
	axis, err := raw.Axis.value()
	if err != nil {
		return nil, err
	}
	if axis.IsZero() {
		axis = gamemath.Up
	}
	return &RotationEvent{Window: raw.Window, Axis: axis, TotalAngle: raw.TotalAngle, Easing: easing}, nil
}

func (raw rawAttack) event() (Event, error) {
	reaction, err := lookup(reactionNames, raw.Knockback.Reaction, ReactionFlinch)
	if err != nil {
		return nil, err
	}
	var vs [4]gamemath.Vec3
	for i, v := range []vec3{raw.Hitbox.Offset, raw.Hitbox.Size, raw.Knockback.Velocity, raw.Knockback.Acceleration} {
		if vs[i], err = v.value(); err != nil {
			return nil, err
		}
	}
	maxHits := raw.MaxHitCount
	if maxHits <= 0 {
		maxHits = 1
	}
	return &AttackEvent{
		Window:      raw.Window,
		MaxHitCount: maxHits,
		HitInterval: raw.HitInterval,
		Damage:      raw.Damage,
		Hitbox:      Hitbox{Offset: vs[0], Size: vs[1]},
		Knockback: Knockback{
			Velocity:     vs[2],
			Acceleration: vs[3],
			Duration:     raw.Knockback.Duration,
			Reaction:     reaction,
		},
	}, nil
}

func (raw rawEffect) event() (Event, error) {
	post, err := lookup(postEffectNames, raw.PostEffect, PostEffectNone)
	if err != nil {
		return nil, err
	}
	trigger, err := lookup(triggerNames, raw.Trigger, OnActionStart)
	if err != nil {
		return nil, err
	}
	return &EffectEvent{
		Window:               raw.Window,
		HitStopDuration:      raw.HitStopDuration,
		CameraShakeDuration:  raw.CameraShakeDuration,
		CameraShakeIntensity: raw.CameraShakeIntensity,
		SoundID:              raw.SoundID,
		ParticleID:           raw.ParticleID,
		PostEffect:           post,
		Trigger:              trigger,
	}, nil
}

func (raw rawCamera) event() (Event, error) {
	trigger, err := lookup(triggerNames, raw.Trigger, OnActionStart)
	if err != nil {
		return nil, err
	}
	speed := raw.PlaybackSpeed
	if speed == 0 {
		speed = 1
	}
	return &CameraAnimationEvent{
		Window:          raw.Window,
		CameraClip:      raw.CameraClip,
		PlaybackSpeed:   speed,
		SyncToCharacter: raw.SyncToCharacter,
		Trigger:         trigger,
	}, nil
}

func (raw rawQTE) event() (Event, error) {
	trigger, err := lookup(triggerNames, raw.Trigger, OnActionStart)
	if err != nil {
		return nil, err
	}
	action, err := parseAction(raw.Action)
	if err != nil {
		return nil, err
	}
	scale := raw.TimeScale
	if scale <= 0 {
		scale = config.QTE.DefaultTimeScale
	}
	return &QTEEvent{
		Window:       raw.Window,
		Action:       action,
		RequiredTime: raw.RequiredTime,
		TimeScale:    scale,
		Trigger:      trigger,
	}, nil
}

// Decode reads a YAML document.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, nil
		}
		return nil, err
	}
	return doc, nil
}

// Library converts the document into schedules. Same-kind overlaps are
// logged, not rejected.
func (d Document) Library() *Library {
	lib := NewLibrary()
	d.mergeInto(lib)
	return lib
}

func (d Document) mergeInto(lib *Library) {
	characters := make([]string, 0, len(d))
	for c := range d {
		characters = append(characters, c)
	}
	sort.Strings(characters)
	for _, character := range characters {
		for clip, records := range d[character] {
			evs := make([]Event, 0, len(records))
			for _, r := range records {
				evs = append(evs, r.Event)
			}
			s := NewSchedule(clip, evs...)
			for _, o := range s.Overlaps() {
				log.Printf("[events] %s: %s", character, o)
			}
			lib.Put(character, s)
		}
	}
}

// LoadDocument decodes one document file into a library.
func LoadDocument(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read event document: %w", err)
	}
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc.Library(), nil
}

// LoadDir merges every .yaml/.yml document in dir, in file name order. Later
// files replace schedules for the same character and clip.
func LoadDir(dir string) (*Library, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("read event directory: %w", err)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS merges the documents at the root of fsys the way LoadDir does.
func LoadFS(fsys fs.FS) (*Library, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read event directory: %w", err)
	}
	lib := NewLibrary()
	for _, e := range entries {
		if e.IsDir() || !IsDocumentFile(e.Name()) {
			continue
		}
		data, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, fmt.Errorf("read event document: %w", err)
		}
		doc, err := Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", e.Name(), err)
		}
		doc.mergeInto(lib)
	}
	return lib, nil
}

// IsDocumentFile reports whether path looks like an event document.
func IsDocumentFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
