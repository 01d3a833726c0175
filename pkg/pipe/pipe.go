package pipe

// Pipe threads value through stages left to right and returns the final
// result. With no stages the value comes back unchanged. Every stage must
// accept and return the same type; use Pipe2..Pipe9 when the type changes
// along the chain.
func Pipe[T any](value T, stages ...func(T) T) T {
	result := value
	for _, stage := range stages {
		result = stage(result)
	}
	return result
}

// Pipe2 applies s1 then s2.
func Pipe2[A, B, C any](value A, s1 func(A) B, s2 func(B) C) C {
	return s2(s1(value))
}

// Pipe3 applies s1, s2, s3 in order.
func Pipe3[A, B, C, D any](value A, s1 func(A) B, s2 func(B) C, s3 func(C) D) D {
	return s3(s2(s1(value)))
}

// Pipe4 applies four stages in order.
func Pipe4[A, B, C, D, E any](value A, s1 func(A) B, s2 func(B) C, s3 func(C) D,
	s4 func(D) E) E {
	return s4(s3(s2(s1(value))))
}

// Pipe5 applies five stages in order.
func Pipe5[A, B, C, D, E, F any](value A, s1 func(A) B, s2 func(B) C, s3 func(C) D,
	s4 func(D) E, s5 func(E) F) F {
	return s5(s4(s3(s2(s1(value)))))
}

// Pipe6 applies six stages in order.
func Pipe6[A, B, C, D, E, F, G any](value A, s1 func(A) B, s2 func(B) C, s3 func(C) D,
	s4 func(D) E, s5 func(E) F, s6 func(F) G) G {
	return s6(s5(s4(s3(s2(s1(value))))))
}

// Pipe7 applies seven stages in order.
func Pipe7[A, B, C, D, E, F, G, H any](value A, s1 func(A) B, s2 func(B) C, s3 func(C) D,
	s4 func(D) E, s5 func(E) F, s6 func(F) G, s7 func(G) H) H {
	return s7(s6(s5(s4(s3(s2(s1(value)))))))
}

// Pipe8 applies eight stages in order.
func Pipe8[A, B, C, D, E, F, G, H, I any](value A, s1 func(A) B, s2 func(B) C, s3 func(C) D,
	s4 func(D) E, s5 func(E) F, s6 func(F) G, s7 func(G) H, s8 func(H) I) I {
	return s8(s7(s6(s5(s4(s3(s2(s1(value))))))))
}

// Pipe9 applies nine stages in order.
func Pipe9[A, B, C, D, E, F, G, H, I, J any](value A, s1 func(A) B, s2 func(B) C, s3 func(C) D,
	s4 func(D) E, s5 func(E) F, s6 func(F) G, s7 func(G) H, s8 func(H) I, s9 func(I) J) J {
	return s9(s8(s7(s6(s5(s4(s3(s2(s1(value)))))))))
}
