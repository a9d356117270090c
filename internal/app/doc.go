// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kick Presence contributors

// Package app implements the kick-presence application runtime.
//
// For now the runtime only reports the loaded configuration and prints a
// placeholder banner; Kick monitoring and Discord rich presence will hang off
// App.Run.
package app
