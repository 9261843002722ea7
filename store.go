package clubfolio

import "errors"

// ErrNotFound is returned by a Store when the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrVersionConflict is returned by SaveClub when the club row changed since
// the snapshot was read. The caller re-reads and retries the whole operation;
// nothing has been written.
var ErrVersionConflict = errors.New("club version conflict")

// ErrInviteCodeTaken is returned by CreateClub when the generated invite code
// collides with an existing club. The caller regenerates and retries.
var ErrInviteCodeTaken = errors.New("invite code already taken")

// ErrAlreadyMember is returned by CreateMember when the user already has a
// membership in the club.
var ErrAlreadyMember = errors.New("user is already a member of this club")

// Store is the persistence contract the engine's callers depend on. The core
// treats it as a plain read/write record store: every engine operation reads
// a snapshot, computes new records, and writes them back through these
// methods. Atomicity across the writes of one operation and the uniqueness
// of invite codes are the implementation's responsibility.
type Store interface {
	// CreateClub inserts a new club. It fails if the invite code is already
	// taken, in which case the caller regenerates a code and retries.
	CreateClub(club Club) error
	// Club loads a club by id.
	Club(id string) (Club, error)
	// ClubByInviteCode loads a club by its invite code.
	ClubByInviteCode(code string) (Club, error)
	// SaveClub writes the club back, guarded by club.Version: it fails with
	// ErrVersionConflict unless the stored version still equals it, and
	// increments the version on success.
	SaveClub(club Club) error

	// CreateMember inserts a new membership. It fails with ErrAlreadyMember
	// when the user already belongs to the club.
	CreateMember(m Member) error
	Members(clubID string) ([]Member, error)
	Member(clubID, userID string) (Member, error)
	SaveMember(m Member) error

	Assets(clubID string) ([]Asset, error)
	UpsertAsset(a Asset) error
	DeleteAsset(id string) error

	// AppendTransaction appends tx to the club's log and returns it with its
	// per-club monotonic Seq assigned.
	AppendTransaction(tx Transaction) (Transaction, error)
	Transactions(clubID string) ([]Transaction, error)

	AppendNavEntry(e NavEntry) error
	NavHistory(clubID string) ([]NavEntry, error)
}
