// Package pitch converts between frequency in Hz and MIDI note numbers.
//
// The mapping is the equal-tempered standard referenced to A4 = 440 Hz =
// MIDI note 69, with 12 notes per octave:
//
//	midi = 69 + 12*log2(f/440)
//	f    = 440 * 2^((midi-69)/12)
//
// Both conversions are exact inverses of each other up to floating-point
// precision. Out-of-domain inputs are not guarded: HzToMIDI passes
// non-positive frequencies through the logarithm (-Inf at zero, NaN below),
// matching the underlying math library behavior.
package pitch

import (
	"fmt"
	"math"
)

// Conversion reference constants.
const (
	A4FrequencyHz  = 440.0
	A4MIDINumber   = 69.0
	NotesPerOctave = 12.0
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// HzToMIDI converts a frequency in Hz to a (fractional) MIDI note number.
func HzToMIDI(freqHz float64) float64 {
	return A4MIDINumber + NotesPerOctave*math.Log2(freqHz/A4FrequencyHz)
}

// MIDIToHz converts a MIDI note number to a frequency in Hz.
// Defined for all real inputs, including fractional notes.
func MIDIToHz(midiNote float64) float64 {
	return A4FrequencyHz * math.Exp2((midiNote-A4MIDINumber)/NotesPerOctave)
}

// NoteName returns the scientific pitch name of a MIDI note number,
// e.g. NoteName(69) == "A4" and NoteName(60) == "C4".
func NoteName(midiNote int) string {
	idx := midiNote % 12
	if idx < 0 {
		idx += 12
	}
	oct := (midiNote-idx)/12 - 1
	return fmt.Sprintf("%s%d", noteNames[idx], oct)
}

// NearestNote returns the nearest equal-tempered MIDI note for a frequency,
// along with the deviation from that note in cents. The frequency must be
// positive for a meaningful result.
func NearestNote(freqHz float64) (midiNote int, cents float64) {
	m := HzToMIDI(freqHz)
	midiNote = int(math.Round(m))
	cents = (m - float64(midiNote)) * 100
	return midiNote, cents
}
