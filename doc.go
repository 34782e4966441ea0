/*
Package ber implements the core of the ASN.1 Basic Encoding Rules
(ITU-T X.690): the tag/length/value header codec, the Element value
model, and per-universal-type accessors for BOOLEAN, INTEGER, BIT
STRING, OCTET STRING, NULL, OBJECT IDENTIFIER, RELATIVE-OID, REAL,
ENUMERATED, the string family, UTCTime, GeneralizedTime, SEQUENCE, SET,
and the EXTERNAL / EmbeddedPDV / CharacterString composite types.

This package does not implement schema-driven decoding, struct-tag
marshaling, or CER/DER encoding; it decodes and encodes one Element at
a time, leaving type dispatch and aggregate structure to the caller.
*/
package ber
