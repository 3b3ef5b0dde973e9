// Package gallows is a Hangman drawing component for [Ebitengine].
//
// The component incrementally renders a stick-figure gallows scene onto a
// persistent square canvas, one part per incorrect guess. The ten parts reveal
// in a fixed order: platform, post, beam, rope, head, body, left arm, right
// arm, left leg, right leg.
//
// # Quick start
//
// Create a [Drawing], give it a size (directly or through a [Sizer]), and feed
// it the incorrect-guess count as your game state advances:
//
//	drawing := gallows.NewDrawing()
//	sizer := gallows.NewSizer(drawing, nil) // follows the window width
//
//	// each frame:
//	sizer.Update()
//	drawing.SetIncorrectGuesses(wrongGuesses)
//	drawing.Draw(screen, nil)
//
// Guess-count increases stroke only the newly revealed parts; already-painted
// strokes are never repainted. Lowering the count (a new game) clears the
// canvas and redraws from the start. Counts above ten clamp to the full scene.
//
// # Responsive sizing
//
// A [Sizer] measures a container width each frame and applies it as a square
// canvas size, collapsing bursts of resize events with a trailing debounce
// (default 50ms). When the size changes, the geometry is regenerated at the
// new scale and the visible parts are redrawn; guess-count changes reuse the
// existing geometry.
//
// # Theming and the catalog
//
// A [Theme] controls stroke and background colors, stroke weights, and the
// debounce interval, and can be loaded from TOML with [LoadThemeFile]. The
// examples/catalog program renders every reveal stage side by side and can
// play back a JSON [Story] script for visual development.
//
// Gallows intentionally contains no game logic: word selection, guess
// validation, and win/loss detection belong to the caller, which passes the
// resulting incorrect-guess count down.
//
// Gallows is single-threaded: call all methods from the game loop's goroutine.
//
// [Ebitengine]: https://ebitengine.org
package gallows
