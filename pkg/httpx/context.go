package httpx

type ctxKey string

const (
	CtxKeyAccountID ctxKey = "account_id"
	CtxKeyEmail     ctxKey = "email"
	CtxKeyClaims    ctxKey = "claims" // if you want full jwtx.Claims
)
