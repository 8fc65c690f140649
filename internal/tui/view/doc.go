// Package view renders presentation handles and the surrounding chrome as
// strings for the terminal UI.
//
// Every function here is pure: it reads a handle or a small state struct
// and returns styled text. Nothing in this package touches the playback
// engine, so views can be tested by rendering a step and inspecting the
// output.
//
// # Main Entry Points
//
//   - [Visualization]: dispatches on the handle type ([render.Bars],
//     [render.Network], [render.Grid], [render.Chessboard], [render.Notice])
//   - [Header]: algorithm title, playback badge and progress
//   - [StatusBar]: the current step message or render error
package view
