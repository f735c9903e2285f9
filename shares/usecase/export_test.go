package usecase

// FormatCacheKey exposes cache key formatting for tests.
var FormatCacheKey = formatCacheKey

// ShareAmountOf exposes share coin extraction for tests.
var ShareAmountOf = shareAmountOf
