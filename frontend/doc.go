// Package frontend holds the pieces shared by the desktop and terminal
// front ends: the key-to-action table, the tile palette, sprite sheet
// geometry and the Driver that turns actions into service calls.
//
// Front ends stay thin. They translate a key press into an Action, hand it
// to Driver.Handle and redraw from Driver.State.
package frontend
