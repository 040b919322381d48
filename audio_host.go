package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/ringrush/assets"
	"github.com/milk9111/ringrush/prefabs"
)

// AudioHost plays sounds named in sounds.yaml. Players are created on first
// use; keys with no file or a file that fails to load are skipped.
type AudioHost struct {
	debug   bool
	volume  float64
	clips   map[string]prefabs.SoundSpec
	players map[string]*audio.Player
	failed  map[string]bool
	music   *audio.Player
}

func NewAudioHost(debug bool) *AudioHost {
	h := &AudioHost{
		debug:   debug,
		volume:  1,
		clips:   make(map[string]prefabs.SoundSpec),
		players: make(map[string]*audio.Player),
		failed:  make(map[string]bool),
	}
	h.Reload()
	return h
}

// Reload re-reads sounds.yaml. Existing players are kept.
func (h *AudioHost) Reload() {
	spec, err := prefabs.LoadSoundsSpec()
	if err != nil {
		log.Printf("audio: load sounds: %v", err)
		return
	}
	if spec.Volume > 0 {
		h.volume = spec.Volume
	}
	h.clips = make(map[string]prefabs.SoundSpec, len(spec.Sounds))
	for _, s := range spec.Sounds {
		h.clips[s.Key] = s
	}
	h.failed = make(map[string]bool)
}

func (h *AudioHost) player(key string) *audio.Player {
	if p, ok := h.players[key]; ok {
		return p
	}
	if h.failed[key] {
		return nil
	}
	clip, ok := h.clips[key]
	if !ok || clip.File == "" {
		h.skip(key, "no clip")
		return nil
	}
	p, err := assets.LoadAudioPlayer(clip.File, clip.Loop)
	if err != nil {
		h.skip(key, err.Error())
		return nil
	}
	p.SetVolume(h.volume)
	h.players[key] = p
	return p
}

func (h *AudioHost) skip(key, reason string) {
	h.failed[key] = true
	if h.debug {
		log.Printf("audio: skip %s: %s", key, reason)
	}
}

func (h *AudioHost) PlaySound(key string) {
	p := h.player(key)
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("audio: rewind %s: %v", key, err)
	}
	p.Play()
}

func (h *AudioHost) PlayMusic(key string) {
	p := h.player(key)
	if p == nil {
		return
	}
	if h.music != nil && h.music != p {
		h.music.Pause()
	}
	h.music = p
	if !p.IsPlaying() {
		_ = p.Rewind()
		p.Play()
	}
}

func (h *AudioHost) StopMusic() {
	if h.music == nil {
		return
	}
	h.music.Pause()
	h.music = nil
}
