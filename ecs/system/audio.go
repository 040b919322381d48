package system

import (
	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
)

// AudioSink plays sounds by key. Unknown keys must be ignored.
type AudioSink interface {
	PlaySound(key string)
	PlayMusic(key string)
	StopMusic()
}

// AudioSystem drains sound and music request entities into the sink. With
// no sink the requests are simply dropped.
type AudioSystem struct {
	sink AudioSink
}

func NewAudioSystem(sink AudioSink) *AudioSystem {
	return &AudioSystem{sink: sink}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.MusicRequestComponent.Kind(), func(e ecs.Entity, req *component.MusicRequest) {
		if a.sink != nil {
			if req.Stop {
				a.sink.StopMusic()
			} else {
				a.sink.PlayMusic(req.Key)
			}
		}
		ecs.DestroyEntity(w, e)
	})
	ecs.ForEach(w, component.SoundRequestComponent.Kind(), func(e ecs.Entity, req *component.SoundRequest) {
		if a.sink != nil {
			a.sink.PlaySound(req.Key)
		}
		ecs.DestroyEntity(w, e)
	})
}
