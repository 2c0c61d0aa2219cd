package core

import (
	"testing"
)

func sixteenLeaves() [][]byte {
	leaves := make([][]byte, 16)
	for i := range leaves {
		leaves[i] = []byte{byte(i + 1)}
	}
	return leaves
}

func TestMerkleCommitOpenVerify(t *testing.T) {
	merkle := Merkle{}
	leaves := sixteenLeaves()

	root, err := merkle.Commit(leaves)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	for i, leaf := range leaves {
		path, err := merkle.Open(i, leaves)
		if err != nil {
			t.Fatalf("Open(%d): %v", i, err)
		}
		if len(path) != 4 {
			t.Fatalf("path length for index %d = %d, want 4", i, len(path))
		}
		ok, err := merkle.Verify(root, i, path, leaf)
		if err != nil {
			t.Fatalf("Verify(%d): %v", i, err)
		}
		if !ok {
			t.Errorf("Verify(%d) = false, want true", i)
		}
	}
}

func TestMerkleRejectsTampering(t *testing.T) {
	merkle := Merkle{}
	leaves := sixteenLeaves()

	root, err := merkle.Commit(leaves)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	path, err := merkle.Open(3, leaves)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	t.Run("FlippedLeaf", func(t *testing.T) {
		tampered := []byte{leaves[3][0] ^ 0xFF}
		ok, err := merkle.Verify(root, 3, path, tampered)
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if ok {
			t.Error("expected verify to fail on a tampered leaf")
		}
	})

	t.Run("FlippedRoot", func(t *testing.T) {
		tamperedRoot := append([]byte(nil), root...)
		tamperedRoot[0] ^= 0xFF
		ok, err := merkle.Verify(tamperedRoot, 3, path, leaves[3])
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if ok {
			t.Error("expected verify to fail on a tampered root")
		}
	})

	t.Run("FlippedPathEntry", func(t *testing.T) {
		tamperedPath := make([][]byte, len(path))
		for i, sibling := range path {
			tamperedPath[i] = append([]byte(nil), sibling...)
		}
		tamperedPath[0][0] ^= 0xFF
		ok, err := merkle.Verify(root, 3, tamperedPath, leaves[3])
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if ok {
			t.Error("expected verify to fail on a tampered path entry")
		}
	})
}

func TestMerkleRejectsBadParameters(t *testing.T) {
	merkle := Merkle{}

	t.Run("NonPowerOfTwoLeaves", func(t *testing.T) {
		leaves := [][]byte{{1}, {2}, {3}}
		if _, err := merkle.Commit(leaves); err == nil {
			t.Fatal("expected error for non-power-of-two leaf count")
		}
	})

	t.Run("OutOfRangeIndex", func(t *testing.T) {
		leaves := sixteenLeaves()
		if _, err := merkle.Open(16, leaves); err == nil {
			t.Fatal("expected error for out-of-range index")
		}
	})

	t.Run("InvalidIndexForPathLength", func(t *testing.T) {
		path := [][]byte{{1}, {2}}
		if _, err := merkle.Verify([]byte{0}, 4, path, []byte{9}); err == nil {
			t.Fatal("expected error for index outside 2^len(path)")
		}
	})
}
