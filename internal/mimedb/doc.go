// Package mimedb reads the jshttp mime-db database into builder records.
//
// The database is a JSON object keyed by media type:
//
//	{
//	  "text/plain": {"source": "iana", "compressible": true, "extensions": ["txt", "text"]},
//	  ...
//	}
//
// Object key order is not meaningful, so records are sorted by media type
// before they reach the builder.
package mimedb
