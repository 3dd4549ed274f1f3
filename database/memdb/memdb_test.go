// Copyright (c) 2026 The inchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package memdb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inchain-project/inchaind/database"
)

func TestMemDBGetMissingReturnsNil(t *testing.T) {
	db := New()
	defer db.Close()

	v, err := db.Get([]byte("nope"))
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestMemDBPutGetDelete(t *testing.T) {
	db := New()
	defer db.Close()

	require.NoError(t, db.Put([]byte("k"), []byte("v1")))
	v, err := db.Get([]byte("k"))
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), v)

	require.NoError(t, db.Put([]byte("k"), []byte("v2")))
	v, err = db.Get([]byte("k"))
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), v)

	require.NoError(t, db.Delete([]byte("k")))
	v, err = db.Get([]byte("k"))
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestMemDBDeleteMissingIsNotError(t *testing.T) {
	db := New()
	defer db.Close()
	require.NoError(t, db.Delete([]byte("absent")))
}

func TestMemDBClosedRejectsOps(t *testing.T) {
	db := New()
	require.NoError(t, db.Close())
	require.NoError(t, db.Close())

	_, err := db.Get([]byte("k"))
	require.ErrorIs(t, err, database.ErrClosed)
}

func TestMemDBPutCopiesValue(t *testing.T) {
	db := New()
	defer db.Close()

	value := []byte("original")
	require.NoError(t, db.Put([]byte("k"), value))
	value[0] = 'X'

	v, err := db.Get([]byte("k"))
	require.NoError(t, err)
	require.Equal(t, []byte("original"), v)
}
