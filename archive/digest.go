package archive

import (
	"fmt"

	"github.com/arloliu/rcsv/errs"
	"github.com/arloliu/rcsv/internal/hash"
)

// Digest returns the xxHash64 digest of the archive, as 16 hex digits,
// computed over the canonical serialization with the integrity field left
// out. Leaving integrity out makes the digest independent of whether the
// archive has been sealed, so Seal and Verify agree. The archive must
// serialize cleanly for a digest to exist.
//
// Digest does not modify the archive and may run alongside other readers.
func (a *Archive) Digest() (string, error) {
	text, err := a.serialize(true)
	if err != nil {
		return "", err
	}

	return hash.Hex(text), nil
}

// SealIntegrity computes the archive digest and stores it in the integrity
// field, replacing any previous value.
func (a *Archive) SealIntegrity() error {
	digest, err := a.Digest()
	if err != nil {
		return err
	}
	a.SetIntegrity(digest)

	return nil
}

// VerifyIntegrity recomputes the archive digest and compares it with the
// stored integrity field. An archive without an integrity field verifies
// trivially. A mismatch, which means the archive changed after it was
// sealed, wraps errs.ErrIntegrity.
func (a *Archive) VerifyIntegrity() error {
	if a.integrity == "" {
		return nil
	}

	digest, err := a.Digest()
	if err != nil {
		return err
	}
	if stored := a.Integrity(); stored != digest {
		return fmt.Errorf("%w: stored %s, computed %s", errs.ErrIntegrity, stored, digest)
	}

	return nil
}
