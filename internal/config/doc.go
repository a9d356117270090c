// Package config provides the settings store and the process options of
// kick-presence.
//
// The [Store] owns a single JSON document, by default
// ~/.kick_presence/config.json. On construction the file is read and merged
// with [Defaults]: missing sections are inserted whole and missing fields of
// existing sections get their default value. Values are addressed with dot
// separated keys such as "kick.username" through [Store.Get] and [Store.Set];
// changes reach the disk only through [Store.Save].
//
// [Options] are assembled before the store exists, from the following
// sources (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. KICK_PRESENCE_* environment variables
//
// The logging section of the settings file fills whatever the environment
// left empty, see [LogOptions.WithSettings].
package config
