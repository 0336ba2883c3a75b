package utils

import "time"

// AuthSessionPrefix is the prefix for Redis auth token session keys.
const AuthSessionPrefix = "authSession:"

// AuthSessionTTL matches the JWT lifetime; revocation deletes the key early.
const AuthSessionTTL = 72 * time.Hour

// RoomStatusPrefix is the prefix for cached computed room status keys.
const RoomStatusPrefix = "roomStatus:"

// RoomStatusTTL keeps computed occupancy fresh without hammering the
// booking collection on every card render.
const RoomStatusTTL = 30 * time.Second
