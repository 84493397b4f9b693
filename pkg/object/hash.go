package object

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// Envelope returns the storage image of an object: the ASCII header
// "<kind> <decimal-length>\0" concatenated with data. This is exactly what
// gets hashed to produce the object's id and exactly what gets deflated for
// the on-disk encoding.
func Envelope(objType ObjectType, data []byte) []byte {
	header := fmt.Sprintf("%s %d\x00", objType, len(data))
	out := make([]byte, 0, len(header)+len(data))
	out = append(out, header...)
	out = append(out, data...)
	return out
}

// HashObject computes the object id: the hex-encoded SHA-1 of the storage
// image "type len\0content". Isolating the hash here is the single place an
// implementer would swap in a different digest.
func HashObject(objType ObjectType, data []byte) Hash {
	sum := sha1.Sum(Envelope(objType, data))
	return Hash(hex.EncodeToString(sum[:]))
}
