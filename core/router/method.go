package router

import (
	"net/http"
	"strings"
)

type methodTyp uint

const (
	mSTUB methodTyp = 1 << iota
	mCONNECT
	mDELETE
	mGET
	mHEAD
	mOPTIONS
	mPATCH
	mPOST
	mPUT
	mTRACE
)

var methodMap = map[string]methodTyp{
	http.MethodConnect: mCONNECT,
	http.MethodDelete:  mDELETE,
	http.MethodGet:     mGET,
	http.MethodHead:    mHEAD,
	http.MethodOptions: mOPTIONS,
	http.MethodPatch:   mPATCH,
	http.MethodPost:    mPOST,
	http.MethodPut:     mPUT,
	http.MethodTrace:   mTRACE,
}

// methodOrder lists methods in the order they are reported by RouteInfo.
var methodOrder = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
	http.MethodConnect,
	http.MethodTrace,
}

// parseMethods folds method names into a bitmask. An empty list means every method.
func parseMethods(methods []string) (methodTyp, bool) {
	if len(methods) == 0 {
		var all methodTyp
		for _, m := range methodMap {
			all |= m
		}
		return all, true
	}

	var mask methodTyp
	for _, name := range methods {
		m, ok := methodMap[strings.ToUpper(name)]
		if !ok {
			return 0, false
		}
		mask |= m
	}
	return mask, true
}

func (m methodTyp) names() []string {
	names := make([]string, 0, len(methodOrder))
	for _, name := range methodOrder {
		if m&methodMap[name] != 0 {
			names = append(names, name)
		}
	}
	return names
}
