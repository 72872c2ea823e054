package protocol

import "errors"

var (
	ErrNotInitialized     = errors.New("protocol config not initialized")
	ErrAlreadyInitialized = errors.New("protocol config already initialized")
	ErrPaused             = errors.New("protocol is paused")
	ErrFeeTooHigh         = errors.New("protocol fee exceeds the 10% cap")
	ErrNotAuthority       = errors.New("caller is not the config authority")
	ErrNotOracle          = errors.New("caller is not the oracle authority")
)

// SingletonID pins the config to one row; Create on a second row collides
// on the primary key, which is what enforces init-once.
const SingletonID uint64 = 1

type Config struct {
	ID              uint64 `gorm:"primaryKey;column:id" json:"-"`
	Authority       string `gorm:"size:32;not null" json:"authority"`
	OracleAuthority string `gorm:"size:32;not null" json:"oracle_authority"`

	ProtocolFeeBps uint32 `gorm:"not null" json:"protocol_fee_bps"`

	TotalLoansIssued uint64 `gorm:"not null;default:0" json:"total_loans_issued"`
	TotalVolume      uint64 `gorm:"not null;default:0" json:"total_volume"`
	TotalDefaults    uint64 `gorm:"not null;default:0" json:"total_defaults"`

	IsPaused bool `gorm:"not null;default:false" json:"is_paused"`

	CreatedAt int64 `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt int64 `gorm:"autoUpdateTime" json:"-"`
}

func (Config) TableName() string { return "protocol_config" }
