package models

var Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// PointBudget is the fixed total a player may spread across features
// in one session.
const PointBudget = 100

type SessionStatus string

const (
	StatusOpen    SessionStatus = "open"
	StatusPlaying SessionStatus = "playing"
	StatusResults SessionStatus = "results"
)
