// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs provides decoding of [X.509] certificates found in [PEM] bundles.
// It scans a bundle into verbatim certificate blocks, decodes each block (PEM, DER or
// [PKCS7]) and converts it into the subject, issuer, expiry and position record used
// by the x509tree package to rebuild the signing hierarchy.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
