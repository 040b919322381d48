package component

// SoundRequest is a one-shot sound queued for the audio host.
type SoundRequest struct {
	Key string
}

var SoundRequestComponent = NewComponent[SoundRequest]()

// MusicRequest starts the named track, or stops music when Stop is set.
type MusicRequest struct {
	Key  string
	Stop bool
}

var MusicRequestComponent = NewComponent[MusicRequest]()
