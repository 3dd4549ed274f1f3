// Copyright (c) 2026 The inchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package leveldb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelDBGetMissingReturnsNil(t *testing.T) {
	db, err := Open(t.TempDir())
	require.NoError(t, err)
	defer db.Close()

	v, err := db.Get([]byte("nope"))
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestLevelDBPutGetDelete(t *testing.T) {
	db, err := Open(t.TempDir())
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Put([]byte("k"), []byte("v")))
	v, err := db.Get([]byte("k"))
	require.NoError(t, err)
	require.Equal(t, []byte("v"), v)

	require.NoError(t, db.Delete([]byte("k")))
	v, err = db.Get([]byte("k"))
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestLevelDBUnderlyingIsNonNil(t *testing.T) {
	db, err := Open(t.TempDir())
	require.NoError(t, err)
	defer db.Close()
	require.NotNil(t, db.Underlying())
}
